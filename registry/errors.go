package registry

import "go.trai.ch/zerr"

var (
	// ErrDuplicateModule is returned when registering a module under a name that is already taken.
	ErrDuplicateModule = zerr.New("module already registered")

	// ErrNotRegistered is returned when enumerating a module handle this registry does not own.
	ErrNotRegistered = zerr.New("module not registered")

	// ErrMissingDependency is returned when a module or declaration requires a module that is not registered.
	ErrMissingDependency = zerr.New("missing required module")

	// ErrUnbound is returned for a declaration that has neither a type binding nor a provider.
	ErrUnbound = zerr.New("declaration has no type binding")

	// ErrNilType is returned when a provider resolves a declaration to a nil type.
	ErrNilType = zerr.New("provider returned nil type")

	// ErrInvalidManifest is returned when a manifest document is structurally unusable.
	ErrInvalidManifest = zerr.New("invalid manifest")

	// ErrDuplicateType is returned when a manifest declares the same type name twice.
	ErrDuplicateType = zerr.New("type declared twice")

	// ErrUndeclaredBinding is returned when a Go binding is supplied for a name the manifest never declares.
	ErrUndeclaredBinding = zerr.New("binding has no manifest declaration")
)
