/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

package printers

import (
	"fmt"
	"io"
)

// ConsolePrinter handles table-like output for the CLI's output objects.
type ConsolePrinter struct{}

func (p *ConsolePrinter) PrintObj(obj interface{}, w io.Writer) error {
	switch v := obj.(type) {
	case DeviceListOutput:
		return p.printDeviceList(&v, w)
	case *DeviceListOutput:
		return p.printDeviceList(v, w)
	default:
		return fmt.Errorf("no console printer registered for %T", obj)
	}
}

func (p *ConsolePrinter) printDeviceList(out *DeviceListOutput, w io.Writer) error {
	tw := newTextWriter(w)

	if len(out.Devices) == 0 {
		tw.line("No accelerator devices found")
		return tw.flush()
	}

	tw.header("BDF", "Device", "Name")
	for _, dev := range out.Devices {
		tw.row(dev.BDF, dev.Device, dev.Name)
	}

	return tw.flush()
}
