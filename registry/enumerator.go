package registry

import (
	"reflect"

	"go.trai.ch/typecache"
	"go.trai.ch/zerr"
)

var _ typecache.Enumerator[*Module, reflect.Type] = (*Registry)(nil)

// EnumerateTypes resolves the types declared by m, in declaration
// order.
//
// The module fails as a whole when the handle is not registered in
// this registry or when a module-level requirement is missing. A
// declaration fails individually when its own requirements are
// unsatisfied or its binding cannot be resolved; the failure becomes a
// *typecache.TypeError cause and the remaining declarations still
// resolve.
func (r *Registry) EnumerateTypes(m *Module) ([]reflect.Type, error) {
	if m == nil {
		return nil, zerr.New("nil module handle")
	}

	registered, ok := r.Lookup(m.name)
	if !ok || registered != m {
		return nil, zerr.With(ErrNotRegistered, "module", m.name)
	}

	for _, req := range m.requires {
		if !r.contains(req) {
			return nil, zerr.With(zerr.With(ErrMissingDependency, "requires", req), "module", m.name)
		}
	}

	loaded := make([]reflect.Type, len(m.decls))
	var causes []error

	for i, decl := range m.decls {
		typ, err := r.resolveDecl(decl)
		if err != nil {
			causes = append(causes, &typecache.TypeError{TypeName: decl.Name, Err: err})
			continue
		}
		loaded[i] = typ
	}

	if len(causes) > 0 {
		return nil, &typecache.PartialError[reflect.Type]{Loaded: loaded, Causes: causes}
	}
	return loaded, nil
}

// resolveDecl resolves a single declaration to its Go type.
func (r *Registry) resolveDecl(decl Decl) (reflect.Type, error) {
	for _, req := range decl.Requires {
		if !r.contains(req) {
			return nil, zerr.With(ErrMissingDependency, "requires", req)
		}
	}

	if decl.Type != nil {
		return decl.Type, nil
	}
	if decl.Provider == nil {
		return nil, ErrUnbound
	}

	typ, err := decl.Provider()
	if err != nil {
		return nil, zerr.Wrap(err, "provider failed")
	}
	if typ == nil {
		return nil, ErrNilType
	}
	return typ, nil
}
