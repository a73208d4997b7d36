package pkgscan

import (
	"go/types"

	"go.trai.ch/typecache"
	"go.trai.ch/zerr"
)

var _ typecache.Enumerator[*Package, *types.TypeName] = (*Scanner)(nil)

// Scanner enumerates the type declarations of loaded packages. The zero
// value enumerates every declaration; set ExportedOnly to restrict
// enumeration to exported names.
type Scanner struct {
	ExportedOnly bool
}

// EnumerateTypes walks the package scope in name order and returns the
// declared types. Declarations referencing symbols that failed to load
// become nil entries with a named cause; package level load errors are
// reported as additional causes. A package without usable type
// information fails as a whole.
func (s *Scanner) EnumerateTypes(p *Package) ([]*types.TypeName, error) {
	if p == nil || p.pkg == nil {
		return nil, zerr.New("nil package handle")
	}
	pkg := p.pkg
	if pkg.Types == nil {
		return nil, zerr.With(ErrNoTypeInfo, "package", pkg.PkgPath)
	}

	scope := pkg.Types.Scope()
	names := scope.Names()
	declared := make([]*types.TypeName, 0, len(names))
	for _, name := range names {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}
		if s.ExportedOnly && !tn.Exported() {
			continue
		}
		declared = append(declared, tn)
	}

	if len(declared) == 0 && len(pkg.Errors) > 0 {
		return nil, zerr.With(zerr.Wrap(pkg.Errors[0], "package failed to load"), "package", pkg.PkgPath)
	}

	var causes []error
	for _, pkgErr := range pkg.Errors {
		causes = append(causes, pkgErr)
	}

	loaded := make([]*types.TypeName, len(declared))
	for i, tn := range declared {
		if !typeResolves(tn.Type(), make(map[types.Type]bool)) {
			causes = append(causes, &typecache.TypeError{
				TypeName: tn.Name(),
				Err:      ErrUnresolvedType,
			})
			continue
		}
		loaded[i] = tn
	}

	if len(causes) > 0 {
		return nil, &typecache.PartialError[*types.TypeName]{Loaded: loaded, Causes: causes}
	}
	return loaded, nil
}

// typeResolves reports whether t is free of invalid components. Invalid
// components appear when a declaration references an import the build
// system could not provide. The seen map breaks recursive type cycles.
func typeResolves(t types.Type, seen map[types.Type]bool) bool {
	if t == nil {
		return false
	}
	if seen[t] {
		return true
	}
	seen[t] = true

	switch t := t.(type) {
	case *types.Basic:
		return t.Kind() != types.Invalid
	case *types.Alias:
		return typeResolves(types.Unalias(t), seen)
	case *types.Named:
		targs := t.TypeArgs()
		for i := range targs.Len() {
			if !typeResolves(targs.At(i), seen) {
				return false
			}
		}
		return typeResolves(t.Underlying(), seen)
	case *types.Pointer:
		return typeResolves(t.Elem(), seen)
	case *types.Slice:
		return typeResolves(t.Elem(), seen)
	case *types.Array:
		return typeResolves(t.Elem(), seen)
	case *types.Chan:
		return typeResolves(t.Elem(), seen)
	case *types.Map:
		return typeResolves(t.Key(), seen) && typeResolves(t.Elem(), seen)
	case *types.Struct:
		for i := range t.NumFields() {
			if !typeResolves(t.Field(i).Type(), seen) {
				return false
			}
		}
		return true
	case *types.Signature:
		return typeResolves(t.Params(), seen) && typeResolves(t.Results(), seen)
	case *types.Tuple:
		for i := range t.Len() {
			if !typeResolves(t.At(i).Type(), seen) {
				return false
			}
		}
		return true
	case *types.Interface:
		for i := range t.NumEmbeddeds() {
			if !typeResolves(t.EmbeddedType(i), seen) {
				return false
			}
		}
		for i := range t.NumExplicitMethods() {
			if !typeResolves(t.ExplicitMethod(i).Type(), seen) {
				return false
			}
		}
		return true
	case *types.Union:
		for i := range t.Len() {
			if !typeResolves(t.Term(i).Type(), seen) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
