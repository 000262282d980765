package editor

import "github.com/iw2rmb/compose/document"

type moveDir int

const (
	dirLeft moveDir = iota
	dirRight
	dirUp   // previous block, same offset (clamped)
	dirDown // next block, same offset (clamped)
	dirHome // block start
	dirEnd  // block end
)

// moveCaret returns the selection after moving the focus of st's selection
// one step in dir. Without extend the result is collapsed; a range collapses
// to its start (left) or end (right) instead of moving.
func moveCaret(st *document.State, dir moveDir, extend bool) document.Selection {
	c := st.Content()
	sel := st.Selection()

	if !extend && !sel.IsCollapsed() {
		switch dir {
		case dirLeft:
			return document.Collapsed(sel.StartKey(), sel.StartOffset())
		case dirRight:
			return document.Collapsed(sel.EndKey(), sel.EndOffset())
		}
	}

	key, off := sel.FocusKey, sel.FocusOffset
	b := c.BlockForKey(key)
	if b == nil {
		return sel
	}

	switch dir {
	case dirLeft:
		if off > 0 {
			off--
		} else if prev := c.BlockBefore(key); prev != nil {
			key, off = prev.Key(), prev.Len()
		}
	case dirRight:
		if off < b.Len() {
			off++
		} else if next := c.BlockAfter(key); next != nil {
			key, off = next.Key(), 0
		}
	case dirUp:
		if prev := c.BlockBefore(key); prev != nil {
			key, off = prev.Key(), min(off, prev.Len())
		}
	case dirDown:
		if next := c.BlockAfter(key); next != nil {
			key, off = next.Key(), min(off, next.Len())
		}
	case dirHome:
		off = 0
	case dirEnd:
		off = b.Len()
	}

	if !extend {
		return document.Collapsed(key, off)
	}
	out := sel
	out.FocusKey, out.FocusOffset = key, off
	out.IsBackward = isBackward(c, out)
	return out
}

func isBackward(c *document.Content, sel document.Selection) bool {
	if sel.AnchorKey == sel.FocusKey {
		return sel.FocusOffset < sel.AnchorOffset
	}
	for _, b := range c.Blocks() {
		switch b.Key() {
		case sel.AnchorKey:
			return false
		case sel.FocusKey:
			return true
		}
	}
	return false
}
