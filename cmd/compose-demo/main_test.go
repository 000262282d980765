package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/compose/editor"
)

func feed(m model, msgs ...tea.KeyMsg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestIME_EnterCommitsWithNewline(t *testing.T) {
	m := feed(newModel(""), tea.KeyMsg{Type: tea.KeyCtrlO}, runes("가"), runes("나"))
	if !m.composing || m.preedit != "가나" {
		t.Fatalf("composing=%v preedit=%q", m.composing, m.preedit)
	}
	if m.editor.Mode() != editor.ModeComposition {
		t.Fatalf("mode=%v, want composition", m.editor.Mode())
	}

	m = feed(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.composing {
		t.Fatalf("still composing after enter")
	}
	if got := m.editor.State().Content().PlainText(); got != "가나\n" {
		t.Fatalf("text=%q, want %q", got, "가나\n")
	}
	if m.editor.Mode() != editor.ModeEdit {
		t.Fatalf("mode=%v, want edit", m.editor.Mode())
	}
}

func TestIME_BackspaceToEmptyEndsComposition(t *testing.T) {
	m := feed(newModel("x"), tea.KeyMsg{Type: tea.KeyCtrlO}, runes("a"))
	m = feed(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.composing || m.preedit != "" {
		t.Fatalf("composing=%v preedit=%q", m.composing, m.preedit)
	}
	if got := m.editor.State().Content().PlainText(); got != "x" {
		t.Fatalf("text=%q, want unchanged", got)
	}
}

func TestIME_OffPassesKeysThrough(t *testing.T) {
	m := feed(newModel(""), runes("hi"))
	if got := m.editor.State().Content().PlainText(); got != "hi" {
		t.Fatalf("text=%q, want %q", got, "hi")
	}
	if m.composing {
		t.Fatalf("composing without input method")
	}
}
