package pkgscan

import "golang.org/x/tools/go/packages"

// WrapForTest builds a handle around a raw loaded package.
// This is exported for testing purposes only.
func WrapForTest(pkg *packages.Package) *Package {
	return &Package{pkg: pkg}
}
