package editor

import (
	"testing"

	"github.com/iw2rmb/compose/document"
)

func TestRender_CursorAndSelection(t *testing.T) {
	m := New(Config{Text: "ab", Style: markerStyle()})

	if got, want := m.s.render(), "[a]b"; got != want {
		t.Fatalf("caret at start: got %q, want %q", got, want)
	}

	m = m.SetState(m.State().WithSelection(document.Collapsed("b1", 2)))
	if got, want := m.s.render(), "ab[ ]"; got != want {
		t.Fatalf("caret at end: got %q, want %q", got, want)
	}

	m = m.SetState(m.State().WithSelection(document.Range("b1", 0, 1)))
	if got, want := m.s.render(), "{a}b"; got != want {
		t.Fatalf("range: got %q, want %q", got, want)
	}

	m = m.Blur()
	if got, want := m.s.render(), "{a}b"; got != want {
		t.Fatalf("blurred range: got %q, want %q", got, want)
	}
}

func TestRender_BlockPrefixes(t *testing.T) {
	c := document.NewContent(
		document.NewBlock("h", document.HeaderOne, "Title"),
		document.NewBlock("o1", document.OrderedListItem, "x"),
		document.NewBlock("o2", document.OrderedListItem, "y"),
		document.NewBlock("q", document.Blockquote, "quote"),
		document.NewBlock("img", document.Atomic, " "),
	)
	m := New(Config{Content: c, Style: markerStyle()}).Blur()

	want := "# Title\n1. x\n2. y\n> quote\n[atomic]"
	if got := m.s.render(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRender_InlineStyleAndDecorator(t *testing.T) {
	c := document.NewContent(document.NewBlock("a", document.Unstyled, "hi bold @bob"))
	c = document.ApplyInlineStyle(c, document.Range("a", 3, 7), document.Bold)
	caret := document.Collapsed("a", 0)
	c = c.WithSelections(caret, caret)
	m := New(Config{Content: c, Triggers: []string{"@"}, Style: markerStyle()}).Blur()

	if got, want := m.s.render(), "hi *bold* <@bob>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRender_ClipsToViewportWidth(t *testing.T) {
	m := New(Config{Text: "abcdef\n日本語", Style: markerStyle()}).Blur()
	m = m.SetSize(4, 2)

	if got, want := m.s.render(), "abcd\n日本"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRender_ComposingLeafShowsSurfaceText(t *testing.T) {
	m := New(Config{Text: "caf", Style: markerStyle(), Scheduler: noopScheduler{}})
	m = m.SetState(m.State().WithSelection(document.Collapsed("b1", 3)))

	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(m.PreeditMsg("é"))

	if got, want := m.s.render(), "_café_"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if text := m.State().Content().PlainText(); text != "caf" {
		t.Fatalf("model must not change while composing: %q", text)
	}
}
