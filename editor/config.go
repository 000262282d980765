package editor

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/compose/composition"
	"github.com/iw2rmb/compose/document"
)

// Config configures the editor Model. The zero value is usable.
type Config struct {
	// Initial document. When nil, Text is split on '\n' into unstyled
	// blocks.
	Content *document.Content
	Text    string

	// Decorator triggers such as "@" and "#". Each trigger must be a single
	// character; invalid or duplicate triggers are dropped.
	Triggers []string

	// Rendering options.
	Style Style

	// KeyMap defaults to DefaultKeyMap(). Its Left, Right and Enter bindings
	// also drive composition key handling.
	KeyMap *KeyMap

	// Forwarded to document.Options.
	HistoryLimit int

	// Forwarded to composition.Options.
	ResolveDelay time.Duration
	Strict       bool

	// Scheduler runs deferred composition work. When nil, work is scheduled
	// as Bubble Tea commands returned from Update.
	Scheduler composition.Scheduler

	// Logger defaults to a logger that discards everything.
	Logger *slog.Logger

	// OnChange is called from Update whenever the content or the selection
	// changed.
	OnChange func(ChangeEvent)
}
