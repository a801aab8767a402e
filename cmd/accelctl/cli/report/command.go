/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

package report

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/ardikabs/accelctl/cmd/accelctl/common"
	"github.com/ardikabs/accelctl/internal/device"
	"github.com/ardikabs/accelctl/internal/reports"
	"github.com/ardikabs/accelctl/internal/wellknown"
	"github.com/ardikabs/accelctl/pkg/envutil"
)

type reportOptions struct {
	root   *common.RootOptions
	device string
}

// NewCommand creates the "report" command.
func NewCommand(opts *common.RootOptions) *cobra.Command {
	reportOpts := &reportOptions{root: opts}

	cmd := &cobra.Command{
		Use:   "report <name>",
		Short: "Produce a report of the given type for a device",
		Long: "Produce a report of the given type for a device, rendered as aligned\n" +
			"console text or, with --json, as the full data tree in JSON.\n\n" +
			availableReports() +
			"\nExamples:\n" +
			"  accelctl report clocks\n" +
			"  accelctl report preemption -d 0000:c1:00.1\n" +
			"  accelctl report clocks --json",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("specify exactly one report to produce, one of: %s", strings.Join(reports.Names(), ", "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), reportOpts, args[0])
		},
	}

	cmd.Flags().StringVarP(&reportOpts.device, "device", "d", envutil.GetString(wellknown.EnvDevice, ""), "The Bus:Device.Function (e.g., 0000:d8:00.0) device of interest")

	return cmd
}

func availableReports() string {
	var b strings.Builder
	b.WriteString("Available reports:\n")
	for _, name := range reports.Names() {
		if d, ok := reports.Lookup(name); ok {
			fmt.Fprintf(&b, "  %-12s %s\n", name, d.Description)
		}
	}
	return b.String()
}

func runReport(ctx context.Context, opts *reportOptions, name string) error {
	log := logr.FromContextOrDiscard(ctx)

	dev, err := device.Find(opts.root.SysRoot, opts.device)
	if err != nil {
		return err
	}
	log.V(1).Info("resolved device", "bdf", dev.BDF(), "report", name)

	d := reports.Dispatcher{Out: os.Stdout, JSON: opts.root.JsonOutput}
	return d.Run(ctx, dev, name)
}
