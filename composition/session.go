package composition

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/compose/document"
)

// Phase is the lifecycle position of a Session.
type Phase uint8

const (
	// Idle: no composition and no observer.
	Idle Phase = iota
	// Composing: the input method is building text; the observer runs.
	Composing
	// PendingResolve: composition ended and a delayed resolution is
	// scheduled. A composition-start returns the session to Composing.
	PendingResolve
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Composing:
		return "composing"
	case PendingResolve:
		return "pending-resolve"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Session owns one composition lifecycle for one host. Create one per
// editor surface with NewSession; at most one observer exists per Session.
//
// Deferred resolutions carry the session generation they were scheduled
// under. Every composition-start and every resolution bumps the generation,
// so a callback left over from a superseded or already-resolved composition
// finds a mismatch and does nothing.
type Session struct {
	host  Host
	sched Scheduler
	opt   Options
	log   *slog.Logger

	phase    Phase
	gen      uint64
	observer Observer

	resolutions int
}

// NewSession binds a Session to host and sched. It panics when
// opt.NewObserver is nil.
func NewSession(host Host, sched Scheduler, opt Options) *Session {
	if opt.NewObserver == nil {
		panic(&InvariantError{Op: "NewSession", Msg: "Options.NewObserver is required"})
	}
	opt = normalizeOptions(opt)
	return &Session{
		host:  host,
		sched: sched,
		opt:   opt,
		log:   opt.Logger,
	}
}

func (s *Session) Phase() Phase { return s.phase }

// Active reports whether a composition is in flight or awaiting resolution.
func (s *Session) Active() bool { return s.phase != Idle }

// Generation returns the current session generation.
func (s *Session) Generation() uint64 { return s.gen }

// Resolutions returns how many times the session has resolved.
func (s *Session) Resolutions() int { return s.resolutions }

// CompositionStart begins a composition, or continues the current one. The
// observer is created on the first start only; a start while PendingResolve
// cancels the scheduled resolution by superseding its generation.
func (s *Session) CompositionStart() {
	prev := s.phase
	s.gen++
	s.phase = Composing
	if s.observer == nil {
		s.observer = s.opt.NewObserver()
		s.observer.Start()
	}
	if prev == Idle {
		if st := s.host.LatestState(); !st.InCompositionMode() {
			s.host.Update(st.WithCompositionMode(true))
		}
	}
	s.log.Debug("composition: start", slog.String("from", prev.String()), slog.Uint64("gen", s.gen))
}

// CompositionEnd ends the current composition with the committed text data.
//
// When data ends in a line break (some virtual keyboards commit Enter that
// way instead of sending a key event) the session resolves immediately,
// inserts a newline, and schedules a surface restore for the next turn.
// Otherwise resolution is scheduled after Options.ResolveDelay.
func (s *Session) CompositionEnd(data string) {
	if s.phase == Idle {
		s.log.Debug("composition: end without session", slog.String("data", data))
		return
	}
	s.phase = PendingResolve

	if strings.HasSuffix(data, "\n") {
		s.resolve()
		s.host.Update(document.InsertNewline(s.host.LatestState()))
		s.scheduleRestore()
		return
	}

	gen := s.gen
	s.sched.AfterFunc(s.opt.ResolveDelay, func() {
		if s.gen != gen || s.phase != PendingResolve {
			s.log.Debug("composition: stale resolution", slog.Uint64("scheduled", gen), slog.Uint64("gen", s.gen))
			return
		}
		s.resolve()
	})
}

// KeyDown routes a key-down event that arrived while the session exists.
//
// IME-processed events are ignored. Once the composition has ended, any key
// resolves immediately and is dispatched to ordinary key handling, with a
// surface restore on the next turn. While composing, caret keys are
// suppressed.
func (s *Session) KeyDown(ev KeyEvent) KeyAction {
	if ev.IMEProcessed() {
		return KeyIgnored
	}
	if s.phase != Composing {
		s.Resolve()
		s.host.HandleKeyDown(ev)
		s.scheduleRestore()
		return KeyDispatched
	}
	if key.Matches(ev, s.opt.KeyMap.Left, s.opt.KeyMap.Right) {
		return KeyPreventDefault
	}
	return KeyPassThrough
}

// KeyPress suppresses Enter so committing a composition with it does not
// also insert a line break.
func (s *Session) KeyPress(ev KeyEvent) KeyAction {
	if key.Matches(ev, s.opt.KeyMap.Enter) {
		return KeyPreventDefault
	}
	return KeyPassThrough
}

// Input forwards backward deletions to the host. Some keyboards send no
// key-down at all when backspace merges two blocks. It reports whether the
// event was forwarded.
func (s *Session) Input(ev InputEvent) bool {
	if ev.Type != InputDeleteContentBackward {
		return false
	}
	s.host.HandleInput(ev)
	return true
}

// Resolve applies the buffered composition now. It does nothing and returns
// false while still composing or when no session exists, so calling it
// twice without an intervening composition-start updates the model once.
func (s *Session) Resolve() bool {
	if s.phase != PendingResolve {
		return false
	}
	s.resolve()
	return true
}

func (s *Session) resolve() {
	if s.phase == Composing {
		return
	}
	if s.observer == nil {
		panic(&InvariantError{Op: "resolve", Msg: "no active observer"})
	}
	mutations := s.observer.StopAndFlushMutations()
	s.observer = nil
	s.phase = Idle
	s.gen++
	s.resolutions++

	state := s.host.LatestState().WithCompositionMode(false)
	s.host.ExitCurrentMode()

	s.log.Debug("composition: resolve", slog.Int("mutations", mutations.Len()), slog.Uint64("gen", s.gen))
	if mutations.Len() == 0 {
		// Nothing composed, or the surface only grew an empty node: re-render
		// to discard surface-only artifacts.
		s.host.Update(state)
		return
	}
	s.host.Update(ApplyMutations(state, mutations, s.host, s.opt))
}

// scheduleRestore captures the scroll position now and restores the surface
// to it on the next turn, after the current event has been handled.
func (s *Session) scheduleRestore() {
	p := s.host.ScrollPosition()
	s.sched.AfterFunc(0, func() {
		s.host.RestoreSurface(p)
	})
}
