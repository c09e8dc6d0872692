package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is a flattened log record: "level" and "message" plus every
// attribute, including those attached with Logger.With.
type LogEntry map[string]any

// LogRecorder is a memory-backed slog.Handler for asserting on log output.
// Handlers derived via WithAttrs share the recorder's entries.
type LogRecorder struct {
	store *logStore
	attrs []slog.Attr
}

type logStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogRecorder returns an empty recorder and a logger writing to it.
func NewLogRecorder() (*LogRecorder, *slog.Logger) {
	r := &LogRecorder{store: &logStore{}}
	return r, slog.New(r)
}

// Enabled satisfies slog.Handler; every level is recorded.
func (r *LogRecorder) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler.
func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	entry := LogEntry{
		"level":   rec.Level.String(),
		"message": rec.Message,
	}
	for _, a := range r.attrs {
		entry[a.Key] = a.Value.Any()
	}
	rec.Attrs(func(a slog.Attr) bool {
		entry[a.Key] = a.Value.Any()
		return true
	})

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.entries = append(r.store.entries, entry)
	return nil
}

// WithAttrs satisfies slog.Handler.
func (r *LogRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(r.attrs)+len(attrs))
	merged = append(merged, r.attrs...)
	merged = append(merged, attrs...)
	return &LogRecorder{store: r.store, attrs: merged}
}

// WithGroup satisfies slog.Handler. Groups are flattened.
func (r *LogRecorder) WithGroup(string) slog.Handler {
	return r
}

// Entries returns a copy of every captured entry.
func (r *LogRecorder) Entries() []LogEntry {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]LogEntry, len(r.store.entries))
	copy(out, r.store.entries)
	return out
}

// Find returns the first entry with the given message.
func (r *LogRecorder) Find(message string) (LogEntry, bool) {
	for _, e := range r.Entries() {
		if e["message"] == message {
			return e, true
		}
	}
	return nil, false
}
