package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/compose/backspace"
	"github.com/iw2rmb/compose/composition"
	"github.com/iw2rmb/compose/document"
)

// Model is a Bubble Tea component that renders a document.State and
// reconciles input method compositions into it.
//
// Copies of a Model share one surface, like copies of a component sharing a
// buffer pointer.
type Model struct {
	cfg     Config
	id      int
	s       *surface
	session *composition.Session
	sched   composition.Scheduler
	tea     *teaScheduler // nil when cfg.Scheduler is set

	lastContent *document.Content
	lastSel     document.Selection
}

func New(cfg Config) Model {
	km := DefaultKeyMap()
	if cfg.KeyMap != nil {
		km = *cfg.KeyMap
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	content := cfg.Content
	if content == nil {
		content = document.FromText(cfg.Text)
	}
	triggers := parseTriggers(cfg.Triggers, log)

	opt := document.Options{HistoryLimit: cfg.HistoryLimit}
	if len(triggers) > 0 {
		opt.Decorator = document.TriggerDecorator{Triggers: triggers}
	}

	m := Model{
		cfg: cfg,
		id:  nextID(),
		s: &surface{
			state:    document.NewState(content, opt),
			km:       km,
			style:    cfg.Style,
			triggers: triggers,
			log:      log,
			viewport: viewport.New(0, 0),
			recorder: &Recorder{},
			focused:  true,
		},
	}
	rec := m.s.recorder
	m.sched = cfg.Scheduler
	if m.sched == nil {
		m.tea = newTeaScheduler(m.id)
		m.sched = m.tea
	}
	m.session = composition.NewSession(m.s, m.sched, composition.Options{
		ResolveDelay: cfg.ResolveDelay,
		Strict:       cfg.Strict,
		Logger:       log,
		NewObserver:  func() composition.Observer { return rec },
		KeyMap:       km.composition(),
	})
	m.lastContent = m.s.state.Content()
	m.lastSel = m.s.state.Selection()
	m.s.rebuild()
	return m
}

func parseTriggers(in []string, log *slog.Logger) backspace.TriggerSet {
	var out backspace.TriggerSet
	for _, t := range in {
		if _, err := backspace.ParseTriggers(t); err != nil {
			log.Warn("editor: dropping decorator trigger", slog.String("trigger", t), slog.Any("err", err))
			continue
		}
		if !out.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// State returns the current editor state.
func (m Model) State() *document.State { return m.s.state }

// SetState replaces the editor state, for hosts that edit the document
// outside the component.
func (m Model) SetState(st *document.State) Model {
	m.s.Update(st)
	return m
}

// Session exposes the composition session, mostly for inspection.
func (m Model) Session() *composition.Session { return m.session }

// Recorder returns the observer that buffers surface mutations.
func (m Model) Recorder() *Recorder { return m.s.recorder }

// Mode returns the current input mode.
func (m Model) Mode() Mode { return m.s.mode }

// Resyncs returns how many times desynchronized blocks were rebuilt.
func (m Model) Resyncs() int { return m.s.resyncs }

// Restores returns how many surface restores ran.
func (m Model) Restores() int { return m.s.restores }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.s.viewport.Width = width
	m.s.viewport.Height = height
	m.s.rebuild()
	return m
}

func (m Model) Focus() Model {
	if !m.s.focused {
		m.s.focused = true
		m.s.rebuild()
	}
	return m
}

func (m Model) Blur() Model {
	if m.s.focused {
		m.s.focused = false
		m.s.rebuild()
	}
	return m
}

func (m Model) Focused() bool { return m.s.focused }

// PreeditMsg returns the surface mutation an input method produces when it
// shows preedit text at the caret: the leaf holding the caret, with preedit
// spliced in at the caret offset.
func (m Model) PreeditMsg(preedit string) SurfaceMutationMsg {
	st := m.s.state
	sel := st.Selection()
	b := st.Content().BlockForKey(sel.StartKey())
	if b == nil {
		return SurfaceMutationMsg{}
	}
	off := sel.StartOffset()
	loc, leaf := st.BlockTree(b.Key()).LeafAt(b.Key(), off)
	text := b.TextRange(leaf.Start, off) + preedit + b.TextRange(max(off, sel.EndOffset()), leaf.End)
	return SurfaceMutationMsg{Key: loc.Encode(), Text: text}
}

func (m Model) View() string { return m.s.viewport.View() }
