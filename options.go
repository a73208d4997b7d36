package typecache

// config collects the settings applied by Options.
type config struct {
	retryOnFailure bool
}

// Option adjusts the behavior of a Cache at construction time.
type Option func(*config)

// WithRetryOnFailure makes total enumeration failures transient: the
// failed access still returns an empty sequence, but nothing is cached,
// so the next access for the same module enumerates again.
//
// By default a total failure is cached like any other result and the
// module stays empty for the lifetime of the cache.
func WithRetryOnFailure() Option {
	return func(c *config) {
		c.retryOnFailure = true
	}
}
