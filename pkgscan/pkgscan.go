// Package pkgscan enumerates the types declared by Go packages loaded
// from source. Packages load through the go/packages driver; a package
// whose imports fail to resolve still loads, and the declarations
// touching the broken imports degrade into per-type failures while the
// rest of the package enumerates normally.
package pkgscan

import (
	"context"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/tools/go/packages"
)

// Package is a module handle for one loaded Go package. Handles carry
// identity: loading the same package twice yields two distinct handles.
type Package struct {
	pkg *packages.Package
}

// Name returns the package import path.
func (p *Package) Name() string {
	return p.pkg.PkgPath
}

// Load resolves patterns to package handles through the go/packages
// driver, querying from the current directory. Broken packages still
// load; their failures surface when the package is enumerated.
func Load(ctx context.Context, patterns ...string) ([]*Package, error) {
	return LoadDir(ctx, "", patterns...)
}

// LoadDir is Load with an explicit working directory for the build
// system query.
func LoadDir(ctx context.Context, dir string, patterns ...string) ([]*Package, error) {
	pkgs, err := packages.Load(&packages.Config{
		Mode:    packages.NeedName | packages.NeedImports | packages.NeedDeps | packages.NeedTypes,
		Context: ctx,
		Dir:     dir,
	}, patterns...)
	if err != nil {
		return nil, zerr.Wrap(err, "failed loading packages")
	}
	if len(pkgs) == 0 {
		return nil, zerr.With(zerr.New("patterns matched no packages"), "patterns", strings.Join(patterns, " "))
	}

	handles := make([]*Package, len(pkgs))
	for i, pkg := range pkgs {
		handles[i] = &Package{pkg: pkg}
	}
	return handles, nil
}
