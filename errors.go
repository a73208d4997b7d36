package typecache

import (
	"fmt"
	"reflect"
)

// PartialError reports an enumeration that resolved only part of a
// module's types. Loaded holds the declaration sequence with unresolved
// entries left nil; Causes holds one error per failed type. Either
// slice may contain nil entries, which consumers filter out.
type PartialError[T any] struct {
	Loaded []T
	Causes []error
}

// Error summarizes the failure without enumerating individual causes.
func (e *PartialError[T]) Error() string {
	return fmt.Sprintf("partial type enumeration: %d of %d entries unresolved", len(e.Causes), len(e.Loaded))
}

// Unwrap exposes the causes to errors.Is and errors.As.
func (e *PartialError[T]) Unwrap() []error {
	return e.Causes
}

// TypeError is an enumeration failure attributed to a single named
// type. Enumerators use it when they can tell which declaration failed.
type TypeError struct {
	// TypeName is the declared name of the type that failed to resolve.
	TypeName string

	// Err is the underlying failure. May be nil when the enumerator has
	// no more detail than the name itself.
	Err error
}

// Error returns the type name and, when present, the underlying cause.
func (e *TypeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("type %q failed to resolve", e.TypeName)
	}
	return fmt.Sprintf("type %q failed to resolve: %v", e.TypeName, e.Err)
}

// Unwrap returns the underlying failure, if any.
func (e *TypeError) Unwrap() error {
	return e.Err
}

// compactNonNil returns vals without its nil entries, preserving order.
// Value kinds that cannot be nil are kept as-is.
func compactNonNil[T any](vals []T) []T {
	kept := make([]T, 0, len(vals))
	for _, v := range vals {
		if isNil(v) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

// compactErrors returns errs without its nil entries, preserving order.
func compactErrors(errs []error) []error {
	kept := make([]error, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		kept = append(kept, err)
	}
	return kept
}

// isNil reports whether v holds a nil pointer, interface, map, slice,
// channel, or function. T is unconstrained, so the check goes through
// reflection.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
