/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

package reports

import (
	"context"
	"fmt"
	"io"

	"github.com/ardikabs/accelctl/internal/device"
	"github.com/ardikabs/accelctl/pkg/ptree"
)

// Dispatcher resolves a report name against a registry, fetches the
// report's data from a device, and renders it to Out.
type Dispatcher struct {
	// Registry to resolve names against. Nil means DefaultRegistry.
	Registry *Registry

	// Out receives the rendered report.
	Out io.Writer

	// JSON switches the non-empty rendering from console text to the
	// full data tree as indented JSON. An empty report prints its
	// title and empty-message in either mode.
	JSON bool
}

func (d Dispatcher) registry() *Registry {
	if d.Registry != nil {
		return d.Registry
	}
	return DefaultRegistry
}

// Run produces the named report for dev. Nothing is written before the
// data fetch and rendering succeed, except the empty-report notice.
func (d Dispatcher) Run(ctx context.Context, dev *device.Device, name string) error {
	desc, ok := d.registry().Lookup(name)
	if !ok {
		return &UnknownReportError{Name: name}
	}

	node, err := desc.Fetch(ctx, dev)
	if err != nil {
		return &DataSourceError{Report: desc.Name, Err: err}
	}

	coll := node.Child(desc.Collection)
	if coll.Len() == 0 {
		fmt.Fprintf(d.Out, "%s\n%s\n\n", desc.Title, desc.EmptyMessage)
		return nil
	}

	if d.JSON {
		return ptree.WriteJSON(d.Out, node)
	}

	body, err := desc.renderText(coll)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.Out, "%s\n%s", desc.Title, body)
	return nil
}
