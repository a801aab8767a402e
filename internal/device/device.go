/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

// Package device discovers and resolves AMD accelerator devices from the
// PCI sysfs tree.
package device

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardikabs/accelctl/internal/wellknown"
)

// Device is a handle to one accelerator's sysfs directory. Callers borrow
// it read-only for the duration of a single invocation.
type Device struct {
	bdf  string
	path string
}

// BDF returns the device's Bus:Device.Function address, e.g. 0000:c1:00.1.
func (d *Device) BDF() string { return d.bdf }

// Path returns the device's sysfs directory.
func (d *Device) Path() string { return d.path }

// Attr reads a sysfs attribute file relative to the device directory and
// returns its whitespace-trimmed contents.
func (d *Device) Attr(elem ...string) (string, error) {
	data, err := os.ReadFile(filepath.Join(append([]string{d.path}, elem...)...))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// List enumerates accelerator devices under sysRoot: PCI functions with the
// AMD vendor ID and a processing-accelerator class code. Entries without
// readable vendor/class attributes are skipped. Order is directory order,
// which sysfs keeps lexical by BDF.
func List(sysRoot string) ([]*Device, error) {
	entries, err := os.ReadDir(sysRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to scan device tree %s: %w", sysRoot, err)
	}

	var devices []*Device
	for _, entry := range entries {
		dev := &Device{bdf: entry.Name(), path: filepath.Join(sysRoot, entry.Name())}

		vendor, err := dev.Attr("vendor")
		if err != nil || vendor != wellknown.VendorAMD {
			continue
		}
		class, err := dev.Attr("class")
		if err != nil || !strings.HasPrefix(class, wellknown.ClassAcceleratorPrefix) {
			continue
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

// Find resolves filter to exactly one device. An empty filter picks the
// sole device when only one is present. Otherwise the filter, lowercased,
// must equal a device's full BDF or a colon-bounded suffix of it (so
// "c1:00.1" and "00.1" select 0000:c1:00.1, while a bare "1" does not).
func Find(sysRoot, filter string) (*Device, error) {
	devices, err := List(sysRoot)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("no devices found")
	}

	if filter == "" {
		if len(devices) > 1 {
			return nil, fmt.Errorf("multiple devices found, specify one with --device")
		}
		return devices[0], nil
	}

	needle := strings.ToLower(filter)
	var matches []*Device
	for _, dev := range devices {
		if dev.bdf == needle || strings.HasSuffix(dev.bdf, ":"+needle) {
			matches = append(matches, dev)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("device %q not found", filter)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("device %q matches %d devices, specify the full BDF", filter, len(matches))
	}
}
