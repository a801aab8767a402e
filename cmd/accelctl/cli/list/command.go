/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

package list

import (
	"context"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/ardikabs/accelctl/cmd/accelctl/common"
	"github.com/ardikabs/accelctl/cmd/accelctl/printers"
	"github.com/ardikabs/accelctl/internal/device"
	"github.com/ardikabs/accelctl/internal/wellknown"
)

type listOptions struct {
	root *common.RootOptions
}

// NewCommand creates the "list" or "ls" command.
func NewCommand(opts *common.RootOptions) *cobra.Command {
	listOpts := &listOptions{root: opts}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List accelerator devices present on the host",
		Long: `List the AMD NPU accelerator devices found under the PCI device tree,
with their Bus:Device.Function address and device name.

Examples:
  accelctl list
  accelctl list --json
  accelctl ls`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), listOpts)
		},
	}

	return cmd
}

func runList(ctx context.Context, opts *listOptions) error {
	log := logr.FromContextOrDiscard(ctx)

	devices, err := device.List(opts.root.SysRoot)
	if err != nil {
		return err
	}
	log.V(1).Info("scanned device tree", "root", opts.root.SysRoot, "devices", len(devices))

	out := &printers.DeviceListOutput{Devices: []printers.DeviceListItem{}}
	for _, dev := range devices {
		id, name := "", "(unknown)"
		if raw, err := dev.Attr("device"); err == nil {
			id, name = raw, wellknown.DeviceName(raw)
		}
		out.Devices = append(out.Devices, printers.DeviceListItem{
			BDF:    dev.BDF(),
			Device: id,
			Name:   name,
		})
	}

	d := &printers.Dispatcher{JSON: opts.root.JsonOutput}
	return d.PrintObj(out, os.Stdout)
}
