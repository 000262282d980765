package editor

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/compose/document"
	"github.com/iw2rmb/compose/internal/grapheme"
)

func (s *surface) render() string {
	if s.state == nil {
		return ""
	}
	c := s.state.Content()
	blocks := c.Blocks()
	out := make([]string, 0, len(blocks))
	ordinal := 0
	for _, b := range blocks {
		if b.Type() == document.OrderedListItem {
			ordinal++
		} else {
			ordinal = 0
		}
		out = append(out, s.renderBlock(b, ordinal))
	}
	return strings.Join(out, "\n")
}

func blockPrefix(b *document.Block, ordinal int) string {
	switch b.Type() {
	case document.HeaderOne:
		return "# "
	case document.HeaderTwo:
		return "## "
	case document.Blockquote:
		return "> "
	case document.CodeBlock:
		return "    "
	case document.UnorderedListItem:
		return strings.Repeat("  ", b.Depth()) + "- "
	case document.OrderedListItem:
		return strings.Repeat("  ", b.Depth()) + strconv.Itoa(ordinal) + ". "
	default:
		return ""
	}
}

type charRole uint8

const (
	rolePlain charRole = iota
	roleCaret
	roleSelected
)

// lineWriter accumulates one rendered line, clipping at a cell budget.
type lineWriter struct {
	sb    strings.Builder
	cells int
	limit int // 0: unlimited
}

func (w *lineWriter) full() bool { return w.limit > 0 && w.cells >= w.limit }

// write renders clusters with style, dropping whatever does not fit.
func (w *lineWriter) write(style lipgloss.Style, clusters []string) {
	if len(clusters) == 0 {
		return
	}
	n := 0
	for _, cl := range clusters {
		cw := cellWidth(cl)
		if w.limit > 0 && w.cells+cw > w.limit {
			break
		}
		w.cells += cw
		n++
	}
	if n == 0 {
		return
	}
	w.sb.WriteString(style.Render(grapheme.Join(clusters[:n])))
}

func (s *surface) renderBlock(b *document.Block, ordinal int) string {
	w := &lineWriter{limit: s.viewport.Width}
	if p := blockPrefix(b, ordinal); p != "" {
		w.write(s.style.Prefix, grapheme.Split(p))
	}
	if b.Type() == document.Atomic {
		w.write(s.style.Prefix, grapheme.Split("[atomic]"))
		return w.sb.String()
	}

	sel := s.state.Selection()
	showCaret := s.focused && s.mode == ModeEdit

	// Selected offsets within this block as [selStart, selEnd).
	selStart, selEnd := selectedSpan(s.state.Content(), b.Key(), sel)
	role := func(i int) charRole {
		switch {
		case showCaret && sel.IsCollapsed() && sel.FocusKey == b.Key() && sel.FocusOffset == i:
			return roleCaret
		case i >= selStart && i < selEnd:
			return roleSelected
		default:
			return rolePlain
		}
	}

	tree := s.state.BlockTree(b.Key())
	for d, r := range tree {
		decorated := r.DecoratorKey != ""
		for l, leaf := range r.Leaves {
			loc := document.LocationKey{BlockKey: b.Key(), Decorator: d, Leaf: l}
			style := s.style.inline(b.InlineStyleAt(leaf.Start), decorated)

			if text, ok := s.recorder.Text(loc.Encode()); ok {
				w.write(s.style.Composing.Inherit(style), grapheme.Split(text))
				continue
			}
			for i := leaf.Start; i < leaf.End; {
				cr := role(i)
				j := i + 1
				for j < leaf.End && role(j) == cr {
					j++
				}
				cs := style
				switch cr {
				case roleCaret:
					cs = s.style.Cursor.Inherit(style)
				case roleSelected:
					cs = s.style.Selection.Inherit(style)
				}
				w.write(cs, grapheme.Split(b.TextRange(i, j)))
				i = j
			}
		}
	}

	if showCaret && sel.IsCollapsed() && sel.FocusKey == b.Key() && sel.FocusOffset >= b.Len() && !w.full() {
		w.write(s.style.Cursor.Inherit(s.style.Text), []string{" "})
	}
	return w.sb.String()
}

// selectedSpan returns the offsets of block key covered by sel, or an empty
// span when sel is collapsed or misses the block.
func selectedSpan(c *document.Content, key string, sel document.Selection) (int, int) {
	if sel.IsCollapsed() {
		return 0, 0
	}
	startKey, endKey := sel.StartKey(), sel.EndKey()
	inside := false
	for _, b := range c.Blocks() {
		if b.Key() == startKey {
			inside = true
		}
		if b.Key() == key && inside {
			start, end := 0, b.Len()
			if key == startKey {
				start = sel.StartOffset()
			}
			if key == endKey {
				end = sel.EndOffset()
			}
			return start, end
		}
		if b.Key() == endKey {
			break
		}
	}
	return 0, 0
}
