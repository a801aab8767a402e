/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

// Package telemetry reads device telemetry counters.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardikabs/accelctl/internal/device"
	"github.com/ardikabs/accelctl/pkg/ptree"
)

// preemptionAttrs are the per-context counter files, in presentation order.
var preemptionAttrs = []string{
	"user_task",
	"slot_index",
	"preemption_flag_set",
	"preemption_flag_unset",
	"preemption_checkpoint_event",
	"preemption_frame_boundary_events",
}

// PreemptionInfo reads per-context preemption counters and returns a node
// of the shape {"telemetry": [{...}, ...]}, one entry per running hardware
// context in directory order. A device without a telemetry directory
// reports an empty collection; a context missing any counter is a failure.
func PreemptionInfo(ctx context.Context, dev *device.Device) (*ptree.Node, error) {
	telemetry := ptree.NewArray()

	entries, err := os.ReadDir(filepath.Join(dev.Path(), "telemetry"))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read telemetry tree: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		task := ptree.NewObject()
		for _, attr := range preemptionAttrs {
			value, err := dev.Attr("telemetry", entry.Name(), attr)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s for context %s: %w", attr, entry.Name(), err)
			}
			task.SetString(attr, value)
		}
		telemetry.Append(task)
	}

	return ptree.NewObject().Set("telemetry", telemetry), nil
}
