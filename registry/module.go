package registry

import (
	"reflect"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Decl declares one type a module defines.
type Decl struct {
	// Name is the declared type name, unique within the module.
	Name string

	// Type is the Go binding for the declaration. May be nil when the
	// binding is resolved lazily through Provider.
	Type reflect.Type

	// Provider resolves the binding on demand. Consulted only when Type
	// is nil.
	Provider func() (reflect.Type, error)

	// Requires names the modules this declaration needs. An unsatisfied
	// entry fails the declaration, not the whole module.
	Requires []string
}

// Module is a handle for a registered code module. Handles carry
// identity: the registry and the cache key by pointer, so two modules
// built from identical declarations are independent entries even
// though their fingerprints are equal.
type Module struct {
	name     string
	version  string
	requires []string
	decls    []Decl
}

// NewModule builds an unregistered module handle. requires names the
// modules needed by the module as a whole; pass nil when there are
// none.
func NewModule(name, version string, requires []string, decls ...Decl) *Module {
	return &Module{
		name:     name,
		version:  version,
		requires: slices.Clone(requires),
		decls:    slices.Clone(decls),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// Version returns the module version. May be empty.
func (m *Module) Version() string {
	return m.version
}

// Requires returns the names of the modules this module needs as a whole.
func (m *Module) Requires() []string {
	return slices.Clone(m.requires)
}

// Decls returns the module's declarations in declaration order.
func (m *Module) Decls() []Decl {
	return slices.Clone(m.decls)
}

// Fingerprint hashes the module's declared content. Handles built from
// the same declarations share a fingerprint while remaining distinct
// identities.
func (m *Module) Fingerprint() uint64 {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(m.name)
	_, _ = hasher.Write([]byte{0}) // Separator
	_, _ = hasher.WriteString(m.version)
	_, _ = hasher.Write([]byte{0})

	for _, req := range m.requires {
		_, _ = hasher.WriteString(req)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, decl := range m.decls {
		_, _ = hasher.WriteString(decl.Name)
		_, _ = hasher.Write([]byte{0})
		if decl.Type != nil {
			_, _ = hasher.WriteString(decl.Type.String())
		}
		_, _ = hasher.Write([]byte{0})
		for _, req := range decl.Requires {
			_, _ = hasher.WriteString(req)
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0})
	}

	return hasher.Sum64()
}
