/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

package cli

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ardikabs/accelctl/cmd/accelctl/cli/list"
	"github.com/ardikabs/accelctl/cmd/accelctl/cli/report"
	"github.com/ardikabs/accelctl/cmd/accelctl/cli/version"
	"github.com/ardikabs/accelctl/cmd/accelctl/common"
	"github.com/ardikabs/accelctl/internal/wellknown"
	"github.com/ardikabs/accelctl/pkg/envutil"
)

// NewRootCommand creates the root command for accelctl.
func NewRootCommand() *cobra.Command {
	opts := &common.RootOptions{}

	cmd := &cobra.Command{
		Use:   "accelctl",
		Short: "Manage AMD NPU accelerator devices from the command line",
		Long: "accelctl is a CLI for inspecting AMD NPU accelerator devices.\n\n" +
			"It provides commands to enumerate the accelerator devices present on\n" +
			"the host and to produce per-device reports as aligned console text\n" +
			"or JSON.\n\n" +
			"Examples:\n" +
			"  accelctl list\n" +
			"  accelctl report clocks\n" +
			"  accelctl report preemption --device 0000:c1:00.1\n" +
			"  accelctl report clocks --json",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			cmd.SetContext(logr.NewContext(cmd.Context(), log))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.SysRoot, "sys-root", envutil.GetString(wellknown.EnvSysRoot, wellknown.DefaultSysRoot), "Root of the PCI device tree to scan for accelerator devices")
	cmd.PersistentFlags().BoolVar(&opts.JsonOutput, "json", envutil.GetBool(wellknown.EnvJSONOutput, false), "Output the report in json format to the console")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose logging to stderr")

	// Register subcommands
	cmd.AddCommand(version.NewCommand())
	cmd.AddCommand(list.NewCommand(opts))
	cmd.AddCommand(report.NewCommand(opts))

	return cmd
}

// newLogger builds the CLI logger. Reports write to stdout, so logging
// always goes to stderr and stays silent unless verbose mode is on.
func newLogger(verbose bool) (logr.Logger, error) {
	if !verbose {
		return logr.Discard(), nil
	}

	zapLog, err := zap.NewDevelopment()
	if err != nil {
		return logr.Logger{}, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return zapr.NewLogger(zapLog).WithName("accelctl"), nil
}
