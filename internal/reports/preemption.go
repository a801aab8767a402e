/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

package reports

import (
	"github.com/ardikabs/accelctl/internal/telemetry"
	"github.com/ardikabs/accelctl/pkg/table"
)

func init() {
	Register(&Descriptor{
		Name:         "preemption",
		Description:  "Report preemption telemetry data",
		Title:        "Premption Telemetry Data",
		Collection:   "telemetry",
		EmptyMessage: " No hardware contexts running on device",
		Fetch:        telemetry.PreemptionInfo,
		Columns: []Column{
			{Title: "User Task", Justify: table.Left, Key: "user_task"},
			{Title: "Ctx ID", Justify: table.Left, Key: "slot_index"},
			{Title: "Set Hints", Justify: table.Left, Key: "preemption_flag_set"},
			{Title: "Unset Hints", Justify: table.Left, Key: "preemption_flag_unset"},
			{Title: "Checkpoint Events", Justify: table.Left, Key: "preemption_checkpoint_event"},
			{Title: "Frame Boundary Events", Justify: table.Left, Key: "preemption_frame_boundary_events"},
		},
	})
}
