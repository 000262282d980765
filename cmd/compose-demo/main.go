// Command compose-demo runs the block editor in a terminal. Ctrl+O toggles a
// simulated input method that composes typed runes as preedit text, so the
// composition path can be tried without a platform IME.
package main

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/compose"
	"github.com/iw2rmb/compose/editor"
	"github.com/iw2rmb/compose/internal/grapheme"
)

const intro = "Hello from compose.\nType to edit, @mentions and #tags are decorated.\nCtrl+O toggles the input method, Ctrl+C quits."

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type model struct {
	editor editor.Model

	ime       bool
	composing bool
	preedit   string
}

func newModel(text string) model {
	return model{editor: editor.New(editor.Config{
		Text:     text,
		Triggers: []string{"@", "#"},
		Style:    editor.DefaultStyle(),
	})}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+o":
			var cmd tea.Cmd
			if m.composing {
				cmd = m.commit("")
			}
			m.ime = !m.ime
			return m, cmd
		}
		if m.ime {
			if cmd, ok := m.compose(msg); ok {
				return m, cmd
			}
		}
	}
	return m, m.send(msg)
}

// compose feeds msg to the simulated input method. It reports false for
// keys the input method does not consume.
func (m *model) compose(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case msg.Type == tea.KeyRunes && !msg.Alt && !msg.Paste:
		var cmds []tea.Cmd
		if !m.composing {
			m.composing = true
			cmds = append(cmds, m.send(editor.CompositionStartMsg{}))
		}
		m.preedit += string(msg.Runes)
		cmds = append(cmds, m.send(m.editor.PreeditMsg(m.preedit)))
		return tea.Batch(cmds...), true
	case !m.composing:
		return nil, false
	case msg.Type == tea.KeyEnter:
		return m.commit("\n"), true
	case msg.Type == tea.KeyBackspace:
		g := grapheme.Split(m.preedit)
		m.preedit = grapheme.Join(g[:len(g)-1])
		if m.preedit == "" {
			return m.commit(""), true
		}
		return m.send(m.editor.PreeditMsg(m.preedit)), true
	default:
		// Any other key ends the composition and is then handled by the
		// editor, which resolves it right away.
		return tea.Batch(m.commit(""), m.send(msg)), true
	}
}

func (m *model) commit(suffix string) tea.Cmd {
	var cmds []tea.Cmd
	if suffix == "" && m.preedit == "" {
		// Clearing the preedit leaves an empty composition.
		cmds = append(cmds, m.send(m.editor.PreeditMsg("")))
	}
	cmds = append(cmds, m.send(editor.CompositionEndMsg{Data: m.preedit + suffix}))
	m.composing = false
	m.preedit = ""
	return tea.Batch(cmds...)
}

func (m *model) send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.editor.View())
	b.WriteString("\n")
	status := compose.Banner("compose-demo") + "  mode: " + m.editor.Mode().String()
	if m.ime {
		status += "  ime: on"
		if m.composing {
			status += " [" + m.preedit + "]"
		}
	}
	b.WriteString(statusStyle.Render(status))
	return b.String()
}

func main() {
	p := tea.NewProgram(newModel(intro), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
