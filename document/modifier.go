package document

import "github.com/iw2rmb/compose/internal/grapheme"

// RemoveRange deletes the text covered by sel, merging the start and end
// blocks when the range crosses a block boundary. Immutable and segmented
// entities partially covered by a single-block range are removed whole.
func RemoveRange(c *Content, sel Selection) *Content {
	if sel.IsCollapsed() {
		return c
	}
	startKey, endKey := sel.StartKey(), sel.EndKey()
	si, okS := c.index[startKey]
	ei, okE := c.index[endKey]
	if !okS || !okE {
		return c
	}
	startOff, endOff := sel.StartOffset(), sel.EndOffset()
	caret := Collapsed(startKey, startOff)

	if si == ei {
		b := c.blocks[si]
		startOff, endOff = entityRemovalRange(c, b, startOff, endOff)
		caret = Collapsed(startKey, startOff)
		out := c.replaceBlocks(si, si+1, b.splice(startOff, endOff, "", CharMeta{}))
		out.selectionBefore = sel
		out.selectionAfter = caret
		return out
	}

	head := c.blocks[si].slice(0, startOff)
	tail := c.blocks[ei].slice(endOff, c.blocks[ei].Len())
	out := c.replaceBlocks(si, ei+1, head.concat(tail))
	out.selectionBefore = sel
	out.selectionAfter = caret
	return out
}

// InsertText inserts text at the start of sel, which must be collapsed;
// a non-collapsed selection is removed first.
func InsertText(c *Content, sel Selection, text string, style Style, entity string) *Content {
	if !sel.IsCollapsed() {
		return ReplaceText(c, sel, text, style, entity)
	}
	i, ok := c.index[sel.AnchorKey]
	if !ok || text == "" {
		return c
	}
	b := c.blocks[i]
	off := clampInt(sel.AnchorOffset, 0, b.Len())
	nb := b.splice(off, off, text, CharMeta{Style: style, Entity: entity})
	out := c.replaceBlocks(i, i+1, nb)
	out.selectionBefore = sel
	out.selectionAfter = Collapsed(b.Key(), off+(nb.Len()-b.Len()))
	return out
}

// ReplaceText replaces the text covered by sel with text; the inserted
// characters carry style and entity. This is the primitive composition
// reconciliation writes through. Within one block the range is replaced
// exactly, even over immutable entities: an immutable or segmented entity
// the range only partly covers is stripped from the characters left behind.
// When the range already holds text with the same style and entity on every
// character c is returned unchanged.
func ReplaceText(c *Content, sel Selection, text string, style Style, entity string) *Content {
	if sel.SpansBlocks() {
		removed := RemoveRange(c, sel)
		out := InsertText(removed, Collapsed(sel.StartKey(), sel.StartOffset()), text, style, entity)
		if out != removed {
			out.selectionBefore = sel
		}
		return out
	}

	i, ok := c.index[sel.StartKey()]
	if !ok {
		return c
	}
	b := c.blocks[i]
	meta := CharMeta{Style: style, Entity: entity}
	start := clampInt(sel.StartOffset(), 0, b.Len())
	end := clampInt(sel.EndOffset(), start, b.Len())
	if sameText(b, start, end, text, meta) {
		return c
	}
	nb := stripEntitiesAtEdges(c, b, start, end).splice(start, end, text, meta)
	out := c.replaceBlocks(i, i+1, nb)
	out.selectionBefore = sel
	out.selectionAfter = Collapsed(b.Key(), start+grapheme.Count(text))
	return out
}

func sameText(b *Block, start, end int, text string, meta CharMeta) bool {
	if start < 0 || end > b.Len() || start > end || b.TextRange(start, end) != text {
		return false
	}
	for i := start; i < end; i++ {
		if b.Meta(i) != meta {
			return false
		}
	}
	return true
}

// SplitBlock removes sel and splits the block at the caret. The tail keeps
// the block type and receives a fresh key; the caret moves to its start.
func SplitBlock(c *Content, sel Selection) *Content {
	removed := RemoveRange(c, sel)
	key, off := sel.StartKey(), sel.StartOffset()
	if !sel.IsCollapsed() {
		key, off = removed.selectionAfter.AnchorKey, removed.selectionAfter.AnchorOffset
	}
	i, ok := removed.index[key]
	if !ok {
		return c
	}
	b := removed.blocks[i]
	off = clampInt(off, 0, b.Len())

	out := removed.derive()
	tailKey := out.nextKey()
	head := b.slice(0, off)
	tail := b.slice(off, b.Len()).withKey(tailKey)
	next := make([]*Block, 0, len(out.blocks)+1)
	next = append(next, out.blocks[:i]...)
	next = append(next, head, tail)
	next = append(next, out.blocks[i+1:]...)
	out.setBlocks(next)
	out.selectionBefore = sel
	out.selectionAfter = Collapsed(tailKey, 0)
	return out
}

// RemoveBlock deletes the block with key. The last remaining block is
// replaced by an empty unstyled block instead.
func RemoveBlock(c *Content, key string, caret Selection) *Content {
	i, ok := c.index[key]
	if !ok {
		return c
	}
	if len(c.blocks) == 1 {
		out := c.replaceBlocks(0, 1, NewBlock(key, Unstyled, ""))
		out.selectionAfter = Collapsed(key, 0)
		return out
	}
	out := c.replaceBlocks(i, i+1)
	out.selectionBefore = caret
	out.selectionAfter = caret
	return out
}

// SetBlockType changes the type of the block with key.
func SetBlockType(c *Content, key string, typ BlockType) *Content {
	i, ok := c.index[key]
	if !ok || c.blocks[i].Type() == typ {
		return c
	}
	return c.replaceBlocks(i, i+1, c.blocks[i].withType(typ))
}

// ApplyInlineStyle adds style to every character covered by sel.
func ApplyInlineStyle(c *Content, sel Selection, style Style) *Content {
	return mapRange(c, sel, func(m CharMeta) CharMeta {
		m.Style |= style
		return m
	})
}

// ApplyEntity sets entity (which may be "") on every character covered by sel.
func ApplyEntity(c *Content, sel Selection, entity string) *Content {
	return mapRange(c, sel, func(m CharMeta) CharMeta {
		m.Entity = entity
		return m
	})
}

func mapRange(c *Content, sel Selection, fn func(CharMeta) CharMeta) *Content {
	if sel.IsCollapsed() {
		return c
	}
	si, okS := c.index[sel.StartKey()]
	ei, okE := c.index[sel.EndKey()]
	if !okS || !okE {
		return c
	}
	out := c.derive()
	for i := si; i <= ei; i++ {
		b := out.blocks[i]
		start, end := 0, b.Len()
		if i == si {
			start = sel.StartOffset()
		}
		if i == ei {
			end = sel.EndOffset()
		}
		out.blocks[i] = b.mapMeta(start, end, fn)
	}
	out.selectionBefore = sel
	out.selectionAfter = sel
	return out
}

// stripEntitiesAtEdges clears immutable and segmented entities that cross
// the start or end of [start, end) from every character of their run.
func stripEntitiesAtEdges(c *Content, b *Block, start, end int) *Block {
	for _, edge := range []int{start, end} {
		if edge <= 0 || edge >= b.Len() {
			continue
		}
		key := b.EntityAt(edge)
		if key == "" || b.EntityAt(edge-1) != key {
			continue
		}
		if e, ok := c.entities[key]; ok && e.Mutability == Mutable {
			continue
		}
		s, t := edge, edge
		for s > 0 && b.EntityAt(s-1) == key {
			s--
		}
		for t < b.Len() && b.EntityAt(t) == key {
			t++
		}
		b = b.mapMeta(s, t, func(m CharMeta) CharMeta {
			m.Entity = ""
			return m
		})
	}
	return b
}

// entityRemovalRange widens [start, end) to swallow immutable or segmented
// entities that the range only partly covers.
func entityRemovalRange(c *Content, b *Block, start, end int) (int, int) {
	widen := func(off int) (int, int, bool) {
		key := b.EntityAt(off)
		if key == "" {
			return 0, 0, false
		}
		e, ok := c.entities[key]
		if !ok || e.Mutability == Mutable {
			return 0, 0, false
		}
		s, t := off, off+1
		for s > 0 && b.EntityAt(s-1) == key {
			s--
		}
		for t < b.Len() && b.EntityAt(t) == key {
			t++
		}
		return s, t, true
	}
	if s, _, ok := widen(start); ok && s < start {
		start = s
	}
	if end > start {
		if _, t, ok := widen(end - 1); ok && t > end {
			end = t
		}
	}
	return start, end
}
