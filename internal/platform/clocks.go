/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

// Package platform reads platform-level device information such as clock
// configuration.
package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardikabs/accelctl/internal/device"
	"github.com/ardikabs/accelctl/pkg/ptree"
)

// ClockInfo reads the device's clock tree and returns a node of the shape
// {"clocks": [{"id": ..., "freq_mhz": ...}, ...]}, one entry per clock in
// directory order. A device without a clocks directory reports an empty
// collection; an unreadable attribute is a failure.
func ClockInfo(ctx context.Context, dev *device.Device) (*ptree.Node, error) {
	clocks := ptree.NewArray()

	entries, err := os.ReadDir(filepath.Join(dev.Path(), "clocks"))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read clock tree: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		freq, err := dev.Attr("clocks", entry.Name(), "freq_mhz")
		if err != nil {
			return nil, fmt.Errorf("failed to read clock %s: %w", entry.Name(), err)
		}
		clocks.Append(ptree.NewObject().
			SetString("id", entry.Name()).
			SetString("freq_mhz", freq))
	}

	return ptree.NewObject().Set("clocks", clocks), nil
}
