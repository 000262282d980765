package editor

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/compose/backspace"
	"github.com/iw2rmb/compose/document"
	"github.com/iw2rmb/compose/internal/grapheme"
)

// handleKey runs ordinary (non-composition) key handling. text is what the
// key types when it matches no binding.
func (s *surface) handleKey(k fmt.Stringer, text string) {
	st := s.state
	km := s.km
	// Keys handled here are not platform deletions of a collapsed range.
	s.lastUncollapsed = nil

	switch {
	case key.Matches(k, km.Left):
		s.Update(st.WithSelection(moveCaret(st, dirLeft, false)))
	case key.Matches(k, km.Right):
		s.Update(st.WithSelection(moveCaret(st, dirRight, false)))
	case key.Matches(k, km.Up):
		s.Update(st.WithSelection(moveCaret(st, dirUp, false)))
	case key.Matches(k, km.Down):
		s.Update(st.WithSelection(moveCaret(st, dirDown, false)))
	case key.Matches(k, km.ShiftLeft):
		s.Update(st.WithSelection(moveCaret(st, dirLeft, true)))
	case key.Matches(k, km.ShiftRight):
		s.Update(st.WithSelection(moveCaret(st, dirRight, true)))
	case key.Matches(k, km.Home):
		s.Update(st.WithSelection(moveCaret(st, dirHome, false)))
	case key.Matches(k, km.End):
		s.Update(st.WithSelection(moveCaret(st, dirEnd, false)))

	case key.Matches(k, km.Backspace):
		s.Update(document.PlainBackspace(st, nil))
	case key.Matches(k, km.Enter):
		s.Update(document.InsertNewline(st))

	case key.Matches(k, km.Undo):
		s.Update(st.Undo())
	case key.Matches(k, km.Redo):
		s.Update(st.Redo())

	default:
		if text != "" {
			s.Update(insertText(st, text))
		}
	}
}

// insertText types text over the selection, splitting blocks at line
// breaks.
func insertText(st *document.State, text string) *document.State {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			st = document.InsertNewline(st)
		}
		st = document.InsertCharacters(st, line)
	}
	return st
}

// keyText returns the text a key name types: the name itself when it is a
// single character, "" for named keys such as "tab" or "ctrl+a".
func keyText(name string) string {
	if grapheme.Count(name) == 1 {
		return name
	}
	return ""
}

// deleteContentBackward handles a backward deletion the platform reported
// as an input event. surfaceText is what the caret block shows after the
// deletion, or "" to derive it from the model.
//
// Structural deletions (block merges, removed decorator triggers) run the
// canonical backspace command. Plain deletions are read back from the
// surface text.
func (s *surface) deleteContentBackward(surfaceText string) {
	st := s.state
	sel := st.Selection()
	b := st.Content().BlockForKey(sel.StartKey())
	if b == nil {
		return
	}
	if surfaceText == "" {
		surfaceText = nativeBackspace(st, sel)
	}
	modelText := b.Text()

	res, reason := backspace.Classify(backspace.Input{
		SurfaceText:     surfaceText,
		ModelText:       modelText,
		Block:           b,
		Selection:       sel,
		LastUncollapsed: s.lastUncollapsed,
		Triggers:        s.triggers,
	})
	s.log.Debug("editor: backward delete",
		slog.String("block", b.Key()),
		slog.String("result", res.String()),
		slog.String("reason", reason.String()),
	)

	switch {
	case res == backspace.StructuralBackspace:
		s.Update(backspace.DeleteContentBackward(surfaceText, modelText, b, st, s.lastUncollapsed, s.triggers))
	case reason == backspace.ReasonPlainText:
		s.Update(readBack(st, b, surfaceText))
	}
	s.lastUncollapsed = nil
}

// nativeBackspace returns the text the platform would show for the caret
// block after a native backward delete of sel.
func nativeBackspace(st *document.State, sel document.Selection) string {
	c := st.Content()
	b := c.BlockForKey(sel.StartKey())
	if !sel.IsCollapsed() {
		end := c.BlockForKey(sel.EndKey())
		if end == nil {
			end = b
		}
		return b.TextRange(0, sel.StartOffset()) + end.TextRange(sel.EndOffset(), end.Len())
	}
	off := sel.AnchorOffset
	if off == 0 {
		if prev := c.BlockBefore(b.Key()); prev != nil {
			return prev.Text() + b.Text()
		}
		return b.Text()
	}
	return b.TextRange(0, off-1) + b.TextRange(off, b.Len())
}

// readBack commits the surface text of block b into the model as a
// backspace-character edit, placing the caret where the surface change
// ends.
func readBack(st *document.State, b *document.Block, surfaceText string) *document.State {
	before, after := grapheme.Split(b.Text()), grapheme.Split(surfaceText)
	p := grapheme.CommonPrefix(before, after)
	q := grapheme.CommonSuffix(before, after, p)
	inserted := grapheme.Join(after[p : len(after)-q])

	rng := document.Range(b.Key(), p, len(before)-q)
	c := document.ReplaceText(st.Content(), rng, inserted, b.InlineStyleAt(p), "")
	if c == st.Content() {
		return st
	}
	caret := document.Collapsed(b.Key(), len(after)-q)
	return st.Push(c.WithSelections(st.Selection(), caret), document.ChangeBackspaceCharacter)
}
