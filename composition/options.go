package composition

import (
	"context"
	"log/slog"
	"time"
)

// DefaultResolveDelay is how long a Session waits after composition-end
// before resolving. Some input methods end and immediately restart a
// composition per keystroke; resolving inside that window re-renders
// mid-word.
const DefaultResolveDelay = 20 * time.Millisecond

// Options configures a Session. The zero value is usable.
type Options struct {
	// ResolveDelay defaults to DefaultResolveDelay. Negative means zero.
	ResolveDelay time.Duration

	// Strict makes collaborator contract violations (malformed location
	// keys, keys naming missing blocks or leaves) panic. When false the
	// offending mutation is logged and skipped.
	Strict bool

	// Logger receives debug transitions and warnings. Defaults to a logger
	// that discards everything.
	Logger *slog.Logger

	// NewObserver creates the surface observer for a new session. Required
	// by NewSession.
	NewObserver func() Observer

	// KeyMap defaults to DefaultKeyMap().
	KeyMap *KeyMap
}

func normalizeOptions(opt Options) Options {
	if opt.ResolveDelay == 0 {
		opt.ResolveDelay = DefaultResolveDelay
	}
	if opt.ResolveDelay < 0 {
		opt.ResolveDelay = 0
	}
	if opt.Logger == nil {
		opt.Logger = newNopLogger()
	}
	if opt.KeyMap == nil {
		km := DefaultKeyMap()
		opt.KeyMap = &km
	}
	return opt
}

// nopHandler discards all records; Enabled returns false so callers skip
// formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }
