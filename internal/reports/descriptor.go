/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

// Package reports defines the report descriptors, their registry, and the
// dispatcher that resolves a report name and renders its data to the
// console as aligned text or JSON.
package reports

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/ardikabs/accelctl/internal/device"
	"github.com/ardikabs/accelctl/pkg/ptree"
	"github.com/ardikabs/accelctl/pkg/table"
)

// FetchFunc collects a report's data from a device and returns it as a
// tree whose top level holds the report's collection key.
type FetchFunc func(ctx context.Context, dev *device.Device) (*ptree.Node, error)

// RowFunc renders one collection entry as preformatted console text. The
// returned string must include its own trailing newline.
type RowFunc func(entry *ptree.Node) (string, error)

// Column maps one table column onto a child key of each collection entry.
type Column struct {
	Title   string
	Justify table.Justification
	Key     string
}

// Descriptor declares everything the dispatcher needs to produce one
// report: where the data comes from, which child collection carries the
// entries, and how entries render as console text.
type Descriptor struct {
	// Name is the canonical report name. Dispatch matches it
	// case-insensitively.
	Name string

	// Description is a one-line summary shown in command help.
	Description string

	// Title is the console heading, printed without indentation.
	Title string

	// Collection is the top-level key under which Fetch returns the
	// report entries.
	Collection string

	// EmptyMessage is the exact line printed (indentation included) when
	// the collection has no entries.
	EmptyMessage string

	Fetch FetchFunc

	// Columns is the table schema for the generic console rendering.
	Columns []Column

	// FormatRow, when set, replaces the Columns table with one
	// preformatted line per entry.
	FormatRow RowFunc
}

// renderText renders the report body for console output: the formatted
// rows or the aligned table, followed by one blank line. The whole body is
// produced before anything is written, so a missing entry key fails
// without partial output.
func (d *Descriptor) renderText(coll *ptree.Node) (string, error) {
	if d.FormatRow != nil {
		var b strings.Builder
		for _, entry := range coll.Entries() {
			line, err := d.FormatRow(entry.Node)
			if err != nil {
				return "", err
			}
			b.WriteString(line)
		}
		b.WriteString("\n")
		return b.String(), nil
	}

	headers := lo.Map(d.Columns, func(c Column, _ int) table.Header {
		return table.Header{Title: c.Title, Justify: c.Justify}
	})

	tbl := table.New(headers...)
	for _, entry := range coll.Entries() {
		cells := make([]string, 0, len(d.Columns))
		for _, c := range d.Columns {
			value, err := entry.Node.GetString(c.Key)
			if err != nil {
				return "", err
			}
			cells = append(cells, value)
		}
		tbl.AddRow(cells...)
	}
	return tbl.String("  ") + "\n", nil
}
