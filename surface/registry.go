// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Factory opens a window backend for opts.
type Factory func(opts Options) (Surface, error)

// RegistryEntry describes one window backend.
type RegistryEntry struct {
	Name string

	// Priority orders automatic selection, highest first.
	Priority int

	Factory Factory

	// Available reports whether the backend can run on this machine.
	Available func() bool
}

// ErrNoBackendAvailable is returned by Open when nothing usable is
// registered.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError is returned by OpenByName for an unknown name.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError is returned by OpenByName when the backend is
// registered but its Available check fails.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// Registry maps backend names to factories. Backends add themselves from
// init, so enabling one is a blank import:
//
//	func init() {
//	    surface.Register("glfw", 50, open, nil)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry returns an empty registry. Programs normally use the
// package-level functions, which share one registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*RegistryEntry)}
}

var backends = NewRegistry()

// Register records a backend in the shared registry. A nil available means
// always available. A second registration under the same name wins.
func Register(name string, priority int, factory Factory, available func() bool) {
	backends.Register(name, priority, factory, available)
}

// Unregister drops name from the shared registry.
func Unregister(name string) { backends.Unregister(name) }

// List returns every registered backend, highest priority first.
func List() []string { return backends.List() }

// Available is List restricted to backends whose Available check passes.
func Available() []string { return backends.Available() }

// Get returns a copy of the entry for name.
func Get(name string) (*RegistryEntry, bool) { return backends.Get(name) }

// Open opens the best backend of the shared registry. See Registry.Open.
func Open(opts Options) (Surface, error) { return backends.Open(opts) }

// OpenByName opens name from the shared registry.
func OpenByName(name string, opts Options) (Surface, error) {
	return backends.OpenByName(name, opts)
}

// Register records a backend in r.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	r.entries[name] = &RegistryEntry{Name: name, Priority: priority, Factory: factory, Available: available}
}

// Unregister drops name from r.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// List returns every backend in r, highest priority first, ties by name.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ranked(false)
}

// Available is List restricted to backends whose Available check passes.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ranked(true)
}

// Get returns a copy of the entry for name.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	cp := *e
	return &cp, true
}

// Open calls the factories of the available backends in priority order and
// returns the first surface that opens. If all fail, the error joins every
// factory error.
//
// Fallback only sees factory errors. A backend that defers window or
// device creation to Surface.Run, like gogpu, is picked here even on a
// machine where it will later fail; name another backend in that case.
func (r *Registry) Open(opts Options) (Surface, error) {
	r.mu.RLock()
	names := r.ranked(true)
	r.mu.RUnlock()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var errs []error
	for _, name := range names {
		s, err := r.OpenByName(name, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// OpenByName calls the factory of name.
func (r *Registry) OpenByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	switch {
	case !ok:
		return nil, &BackendNotFoundError{Name: name}
	case !e.Available():
		return nil, &BackendUnavailableError{Name: name}
	}
	return e.Factory(opts)
}

// ranked returns backend names by descending priority, ties by name.
// r.mu must be held.
func (r *Registry) ranked(onlyAvailable bool) []string {
	list := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Priority != list[j].Priority {
			return list[i].Priority > list[j].Priority
		}
		return list[i].Name < list[j].Name
	})
	if len(list) == 0 {
		return nil
	}
	names := make([]string, len(list))
	for i, e := range list {
		names[i] = e.Name
	}
	return names
}

func init() {
	Register(HeadlessName, 0, func(opts Options) (Surface, error) {
		return NewHeadless(opts), nil
	}, nil)
}
