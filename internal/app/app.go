// Package app implements the application layer for the typecache CLI.
package app

import (
	"context"
	"fmt"
	"go/types"
	"io"
	"log/slog"
	"os"

	"go.trai.ch/typecache"
	"go.trai.ch/typecache/internal/logging"
	"go.trai.ch/typecache/pkgscan"
	"go.trai.ch/typecache/registry"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	logger *logging.Logger
	out    io.Writer
}

// New creates a new App instance writing results to stdout.
func New(logger *logging.Logger) *App {
	return &App{
		logger: logger,
		out:    os.Stdout,
	}
}

// SetOutput redirects result output. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// SetLogLevel adjusts the minimum level of the application logger.
func (a *App) SetLogLevel(level slog.Level) {
	a.logger.SetLevel(level)
}

// ScanOptions control a Scan run.
type ScanOptions struct {
	// ExportedOnly restricts enumeration to exported type names.
	ExportedOnly bool
}

// Scan loads the packages matching patterns, enumerates their types
// through the cache and prints one line per type. Packages that load
// partially are reported through the logger and print their resolvable
// subset.
func (a *App) Scan(ctx context.Context, patterns []string, opts ScanOptions) error {
	pkgs, err := pkgscan.Load(ctx, patterns...)
	if err != nil {
		return zerr.Wrap(err, "failed to load packages")
	}

	log := a.logger.Slog()
	log.Debug("packages loaded", "count", len(pkgs))

	scanner := &pkgscan.Scanner{ExportedOnly: opts.ExportedOnly}
	cache := typecache.New[*pkgscan.Package, *types.TypeName](scanner)

	// Warm the cache concurrently; enumeration failures are logged
	// here. The print loop below only sees cache hits.
	cache.Preload(log, pkgs...)

	for _, pkg := range pkgs {
		_, _ = fmt.Fprintln(a.out, pkg.Name())
		for _, tn := range cache.GetTypes(pkg) {
			_, _ = fmt.Fprintf(a.out, "  %s\n", tn.Name())
		}
	}
	return nil
}

// DescribeManifest validates the module manifest at path and prints its
// declarations. The manifest registers without Go bindings, so this
// checks everything short of type resolution.
func (a *App) DescribeManifest(path string) error {
	man, err := registry.LoadManifest(path)
	if err != nil {
		return err
	}

	reg := registry.New()
	mod, err := reg.RegisterManifest(man, nil)
	if err != nil {
		return zerr.Wrap(err, "manifest is not registrable")
	}

	_, _ = fmt.Fprintf(a.out, "module %s version %s\n", mod.Name(), mod.Version())
	for _, req := range mod.Requires() {
		_, _ = fmt.Fprintf(a.out, "  requires %s\n", req)
	}
	for _, decl := range mod.Decls() {
		_, _ = fmt.Fprintf(a.out, "  type %s\n", decl.Name)
	}
	_, _ = fmt.Fprintf(a.out, "fingerprint %016x\n", mod.Fingerprint())
	return nil
}
