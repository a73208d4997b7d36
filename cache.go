// Package typecache memoizes type enumeration for runtime-loaded code
// modules. A Cache asks an Enumerator once for the types a module
// defines, absorbs enumeration failures into warnings on a
// caller-supplied logger, and serves every later request for the same
// module instance from memory without touching the enumerator or the
// logger again.
package typecache

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// discard swallows all records. It backs GetTypes and the nil-logger
// fallback of GetTypesLogged.
var discard = slog.New(slog.DiscardHandler)

// Module identifies a loaded code module. Modules are compared by value
// identity: two instances describing the same content are distinct
// cache keys. Implementations are typically pointers, so identity is
// pointer identity. Name is used for log attribution only and carries
// no identity semantics.
type Module interface {
	comparable

	// Name returns a human-readable identifier for log messages.
	Name() string
}

// Cache memoizes the result of type enumeration per module instance.
//
// The first access for a module runs the enumerator; every later access
// returns the sequence computed then, including sequences that are
// empty or incomplete because enumeration failed. Returned slices are
// shared between callers and must not be modified.
//
// All methods are safe for concurrent use. Enumeration runs outside the
// cache lock, so concurrent first accesses to the same module may each
// enumerate; exactly one result is kept and handed to every caller.
type Cache[M Module, T any] struct {
	enum  Enumerator[M, T]
	retry bool

	mu      sync.RWMutex
	entries map[M][]T
}

// New creates a Cache that resolves modules through enum.
// It panics if enum is nil.
func New[M Module, T any](enum Enumerator[M, T], opts ...Option) *Cache[M, T] {
	if enum == nil {
		panic("typecache: nil enumerator")
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache[M, T]{
		enum:    enum,
		retry:   cfg.retryOnFailure,
		entries: make(map[M][]T),
	}
}

// GetTypes returns the types defined by m, enumerating on first access
// and from cache afterwards. Enumeration failures are absorbed
// silently; use GetTypesLogged to have them reported.
// It panics if m is the zero value.
func (c *Cache[M, T]) GetTypes(m M) []T {
	return c.GetTypesLogged(m, discard)
}

// GetTypesLogged returns the types defined by m, reporting enumeration
// failures as warnings on log. A partial failure yields the resolved
// subset in declaration order; a total failure yields an empty
// sequence. Both outcomes are cached, so on a cache hit log is ignored
// and nothing is emitted, regardless of what the first access reported.
// A nil log degrades to a no-op logger.
// It panics if m is the zero value.
func (c *Cache[M, T]) GetTypesLogged(m M, log *slog.Logger) []T {
	var zero M
	if m == zero {
		panic("typecache: zero module")
	}
	if log == nil {
		log = discard
	}

	c.mu.RLock()
	cached, hit := c.entries[m]
	c.mu.RUnlock()
	if hit {
		return cached
	}

	types, ok := c.compute(m, log)
	if !ok && c.retry {
		return types
	}
	return c.store(m, types)
}

// Len returns the number of modules currently cached.
func (c *Cache[M, T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// compute runs one enumeration and reduces the outcome to the sequence
// to cache. It reports ok=false only on total failure.
func (c *Cache[M, T]) compute(m M, log *slog.Logger) (types []T, ok bool) {
	all, err := c.enum.EnumerateTypes(m)
	if err == nil {
		if all == nil {
			all = []T{}
		}
		return all, true
	}

	mlog := log.With("module", m.Name())

	var partial *PartialError[T]
	if errors.As(err, &partial) {
		loaded := compactNonNil(partial.Loaded)
		causes := compactErrors(partial.Causes)
		mlog.Warn("module types partially loaded",
			"loaded", len(loaded),
			"failed", len(causes))
		for _, cause := range causes {
			var typeErr *TypeError
			if errors.As(cause, &typeErr) {
				mlog.Warn("type failed to resolve", "type", typeErr.TypeName, "error", cause)
			} else {
				mlog.Warn("type enumeration error", "kind", fmt.Sprintf("%T", cause), "error", cause)
			}
		}
		return loaded, true
	}

	mlog.Warn("module types unavailable", "error", err)
	return []T{}, false
}

// store publishes types for m unless another goroutine already did, in
// which case the earlier sequence wins and is returned instead.
func (c *Cache[M, T]) store(m M, types []T) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if winner, exists := c.entries[m]; exists {
		return winner
	}
	c.entries[m] = types
	return types
}
