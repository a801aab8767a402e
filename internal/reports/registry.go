/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

package reports

import (
	"sort"
	"strings"
	"sync"
)

// Registry holds registered report descriptors keyed by lowercased name.
type Registry struct {
	mu      sync.RWMutex
	reports map[string]*Descriptor
}

// NewRegistry creates a new report registry.
func NewRegistry() *Registry {
	return &Registry{
		reports: make(map[string]*Descriptor),
	}
}

// Register adds a descriptor to the registry. A descriptor with the same
// name (in any casing) replaces the previous one.
func (r *Registry) Register(d *Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[strings.ToLower(d.Name)] = d
}

// Lookup retrieves a descriptor by name, matched case-insensitively.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.reports[strings.ToLower(name)]
	return d, ok
}

// Names returns the canonical names of all registered reports, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.reports))
	for _, d := range r.reports {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global report registry.
var DefaultRegistry = NewRegistry()

// Register adds a descriptor to the default registry.
func Register(d *Descriptor) {
	DefaultRegistry.Register(d)
}

// Lookup retrieves a descriptor from the default registry.
func Lookup(name string) (*Descriptor, bool) {
	return DefaultRegistry.Lookup(name)
}

// Names returns the report names in the default registry.
func Names() []string {
	return DefaultRegistry.Names()
}
