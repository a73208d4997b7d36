package pkgscan

import "go.trai.ch/zerr"

var (
	// ErrNoTypeInfo is returned when a loaded package carries no type
	// information at all, meaning nothing can be enumerated.
	ErrNoTypeInfo = zerr.New("package has no type information")

	// ErrUnresolvedType marks a declaration whose type references
	// symbols the build system failed to provide.
	ErrUnresolvedType = zerr.New("type references symbols that failed to load")
)
