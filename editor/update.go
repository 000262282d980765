package editor

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/compose/composition"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.s.viewport, cmd = m.s.viewport.Update(msg)
		return m, cmd
	case deferredMsg:
		if m.tea == nil || !m.tea.run(msg) {
			return m, nil
		}

	case CompositionStartMsg:
		m.session.CompositionStart()
		m.s.mode = ModeComposition
		m.s.rebuild()
	case CompositionEndMsg:
		m.session.CompositionEnd(msg.Data)
	case SurfaceMutationMsg:
		if !m.s.recorder.Record(msg.Key, msg.Text) {
			m.s.log.Debug("editor: surface mutation outside composition", slog.String("key", msg.Key))
			break
		}
		m.s.rebuild()
	case KeyDownMsg:
		m.keyDown(composition.KeyEvent(msg))
	case KeyPressMsg:
		if m.session.Active() {
			m.session.KeyPress(composition.KeyEvent(msg))
		}
	case InputMsg:
		ev := composition.InputEvent(msg)
		if !m.session.Active() || !m.session.Input(ev) {
			m.s.HandleInput(ev)
		}

	case tea.KeyMsg:
		m.updateKey(msg)
	}

	m.notifyChange()
	return m, m.drain()
}

// keyDown routes a platform key-down: to the session while one exists,
// otherwise to ordinary key handling.
func (m Model) keyDown(ev composition.KeyEvent) composition.KeyAction {
	if m.session.Active() {
		return m.session.KeyDown(ev)
	}
	if ev.IMEProcessed() {
		return composition.KeyIgnored
	}
	m.s.HandleKeyDown(ev)
	return composition.KeyDispatched
}

func (m Model) updateKey(msg tea.KeyMsg) {
	if !m.s.focused {
		return
	}

	if m.session.Active() {
		ev := composition.KeyEvent{Key: msg.String()}
		// A key the session lets through belongs to the input method; a
		// key press follows it so Enter can be suppressed.
		if m.session.KeyDown(ev) == composition.KeyPassThrough {
			m.session.KeyPress(ev)
		}
		return
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.s.Update(insertText(m.s.state, string(msg.Runes)))
		return
	}

	var text string
	switch {
	case msg.Type == tea.KeySpace:
		text = " "
	case msg.Type == tea.KeyRunes && !msg.Alt:
		text = string(msg.Runes)
	}
	m.s.handleKey(msg, text)
}

func (m *Model) notifyChange() {
	st := m.s.state
	if st.Content() == m.lastContent && st.Selection() == m.lastSel {
		return
	}
	m.lastContent = st.Content()
	m.lastSel = st.Selection()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(st))
	}
}

func (m Model) drain() tea.Cmd {
	if m.tea == nil {
		return nil
	}
	return m.tea.drain()
}
