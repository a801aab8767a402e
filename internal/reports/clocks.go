/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

package reports

import (
	"fmt"

	"github.com/ardikabs/accelctl/internal/platform"
	"github.com/ardikabs/accelctl/pkg/ptree"
)

func init() {
	Register(&Descriptor{
		Name:         "clocks",
		Description:  "Report clock frequency information",
		Title:        "Clocks",
		Collection:   "clocks",
		EmptyMessage: "  No clock information available",
		Fetch:        platform.ClockInfo,
		FormatRow:    clockRow,
	})
}

// clockRow keeps the historical fixed-width clock layout rather than the
// generic table: the id column is padded to 23 characters regardless of
// content.
func clockRow(entry *ptree.Node) (string, error) {
	id, err := entry.GetString("id")
	if err != nil {
		return "", err
	}
	freq, err := entry.GetString("freq_mhz")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("  %-23s: %3s MHz\n", id, freq), nil
}
