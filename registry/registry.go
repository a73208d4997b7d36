// Package registry implements an in-process module registry whose
// modules declare the types they define. A Registry is the
// typecache.Enumerator for the module handles it owns: registered
// declarations resolve to reflect.Type values, and declarations that
// cannot be resolved degrade into per-type failures instead of failing
// the module as a whole.
package registry

import (
	"slices"
	"strings"
	"sync"

	"go.trai.ch/zerr"
)

// Registry tracks registered modules by name. All methods are safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*Module
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		modules: make(map[string]*Module),
	}
}

// Register adds m to the registry. Registering a second module under an
// already taken name fails with ErrDuplicateModule; the handle that won
// stays registered.
func (r *Registry) Register(m *Module) error {
	if m == nil {
		return zerr.New("cannot register nil module")
	}
	if m.name == "" {
		return zerr.New("cannot register unnamed module")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[m.name]; exists {
		return zerr.With(ErrDuplicateModule, "module", m.name)
	}
	r.modules[m.name] = m
	return nil
}

// Lookup returns the module registered under name.
func (r *Registry) Lookup(name string) (*Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.modules[name]
	return m, ok
}

// Modules returns the registered modules sorted by name.
func (r *Registry) Modules() []*Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mods := make([]*Module, 0, len(r.modules))
	for _, m := range r.modules {
		mods = append(mods, m)
	}
	slices.SortFunc(mods, func(a, b *Module) int {
		return strings.Compare(a.name, b.name)
	})
	return mods
}

// contains reports whether a module is registered under name.
func (r *Registry) contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.modules[name]
	return ok
}
