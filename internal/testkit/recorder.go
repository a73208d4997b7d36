// Package testkit provides test doubles shared by packages that assert
// on cache logging behavior.
package testkit

import (
	"context"
	"log/slog"
	"sync"
)

// Record is one log entry captured by a Recorder, with the attributes
// of the handler scope it was emitted under flattened in.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Recorder is a slog.Handler that captures every record and counts how
// many attribute scopes were derived from it. Safe for concurrent use.
type Recorder struct {
	root  *Recorder
	attrs []slog.Attr

	mu      sync.Mutex
	scopes  int
	records []Record
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	r := &Recorder{}
	r.root = r
	return r
}

// Logger returns a logger that writes into the recorder.
func (r *Recorder) Logger() *slog.Logger {
	return slog.New(r)
}

// Enabled reports true for every level; filtering is up to the test.
func (r *Recorder) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle captures rec together with the scope attributes of this handler.
func (r *Recorder) Handle(_ context.Context, rec slog.Record) error {
	attrs := make(map[string]string, len(r.attrs)+rec.NumAttrs())
	for _, a := range r.attrs {
		attrs[a.Key] = a.Value.String()
	}
	rec.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})

	root := r.root
	root.mu.Lock()
	defer root.mu.Unlock()
	root.records = append(root.records, Record{
		Level:   rec.Level,
		Message: rec.Message,
		Attrs:   attrs,
	})
	return nil
}

// WithAttrs derives a child scope. The child shares the root recorder's
// captured state so tests observe all records in one place.
func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	root := r.root
	root.mu.Lock()
	root.scopes++
	root.mu.Unlock()

	merged := make([]slog.Attr, 0, len(r.attrs)+len(attrs))
	merged = append(merged, r.attrs...)
	merged = append(merged, attrs...)
	return &Recorder{root: root, attrs: merged}
}

// WithGroup is accepted but not tracked; the cache never opens groups.
func (r *Recorder) WithGroup(string) slog.Handler {
	return r
}

// Scopes returns how many attribute scopes were derived so far.
func (r *Recorder) Scopes() int {
	root := r.root
	root.mu.Lock()
	defer root.mu.Unlock()
	return root.scopes
}

// Records returns a snapshot of all captured records in emission order.
func (r *Recorder) Records() []Record {
	root := r.root
	root.mu.Lock()
	defer root.mu.Unlock()
	return append([]Record(nil), root.records...)
}

// Warnings returns the captured records at level WARN or above.
func (r *Recorder) Warnings() []Record {
	root := r.root
	root.mu.Lock()
	defer root.mu.Unlock()

	var warns []Record
	for _, rec := range root.records {
		if rec.Level >= slog.LevelWarn {
			warns = append(warns, rec)
		}
	}
	return warns
}
