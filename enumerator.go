package typecache

// Enumerator resolves the types defined by a module. It is the only
// external capability a Cache depends on.
//
// A total failure is reported as an ordinary error. A partial failure,
// where some types resolved and some did not, is reported as a
// *PartialError carrying both the resolved types and the per-type
// causes.
//
//go:generate go run go.uber.org/mock/mockgen -source=enumerator.go -destination=internal/mocks/mock_enumerator.go -package=mocks
type Enumerator[M Module, T any] interface {
	// EnumerateTypes returns the types defined by mod, in declaration
	// order. Implementations may be called concurrently for distinct
	// modules.
	EnumerateTypes(mod M) ([]T, error)
}

// EnumeratorFunc adapts a plain function to the Enumerator interface.
type EnumeratorFunc[M Module, T any] func(m M) ([]T, error)

// EnumerateTypes calls f(m).
func (f EnumeratorFunc[M, T]) EnumerateTypes(m M) ([]T, error) {
	return f(m)
}
