package typecache

import (
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Preload warms the cache for mods concurrently and returns once every
// module has an entry. Failures are absorbed and reported through log
// exactly as GetTypesLogged would report them. Modules already cached
// are skipped for free.
func (c *Cache[M, T]) Preload(log *slog.Logger, mods ...M) {
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for _, m := range mods {
		g.Go(func() error {
			c.GetTypesLogged(m, log)
			return nil
		})
	}

	// Workers never return errors; Wait is only a join point.
	_ = g.Wait()
}
