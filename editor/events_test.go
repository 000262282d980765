package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/compose/document"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if got := events[0].Text; got != "ab" {
		t.Fatalf("event text after move: got %q, want %q", got, "ab")
	}
	if got := events[0].Selection; got != document.Collapsed("b1", 1) {
		t.Fatalf("event selection after move: got %+v, want %+v", got, document.Collapsed("b1", 1))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // to block end
	if len(events) != 2 {
		t.Fatalf("events after move to end: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op at document end
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	if got := events[2].Text; got != "abX" {
		t.Fatalf("event text after insert: got %q, want %q", got, "abX")
	}
	if got := events[2].Change; got != document.ChangeInsertCharacters {
		t.Fatalf("event change: got %q, want %q", got, document.ChangeInsertCharacters)
	}
	if got := events[2].UndoDepth; got != 1 {
		t.Fatalf("event undo depth: got %d, want 1", got)
	}
}
