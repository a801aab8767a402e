/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

// Package table renders fixed-width, human-aligned text tables from a
// header schema and row tuples.
package table

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Justification controls how a column pads its cells.
type Justification int

const (
	Left Justification = iota
	Right
	Center
)

// Header describes one column: its title and the justification applied to
// the title and every cell beneath it.
type Header struct {
	Title   string
	Justify Justification
}

// Table accumulates rows under a fixed header schema. Rendering is
// two-pass: every column width is max(header width, widest cell width),
// computed over the whole table before any line is produced.
type Table struct {
	headers []Header
	rows    [][]string
}

// New creates an empty table with the given column headers.
func New(headers ...Header) *Table {
	return &Table{headers: headers}
}

// AddRow appends one row in insertion order. The cell count must match the
// header count; a mismatch is a programming error and panics.
func (t *Table) AddRow(cells ...string) {
	if len(cells) != len(t.headers) {
		panic(fmt.Sprintf("table: row has %d cells, expected %d", len(cells), len(t.headers)))
	}
	t.rows = append(t.rows, cells)
}

// String renders the header row followed by the data rows. Every line is
// prefixed with prefix; cells are padded to the column width, separated by
// two spaces, with trailing whitespace trimmed.
func (t *Table) String(prefix string) string {
	widths := lo.Map(t.headers, func(h Header, _ int) int { return len(h.Title) })
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	titles := lo.Map(t.headers, func(h Header, _ int) string { return h.Title })

	var sb strings.Builder
	for _, row := range append([][]string{titles}, t.rows...) {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i], t.headers[i].Justify)
		}
		sb.WriteString(strings.TrimRight(prefix+strings.Join(cells, "  "), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func pad(s string, width int, justify Justification) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	switch justify {
	case Right:
		return strings.Repeat(" ", gap) + s
	case Center:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
