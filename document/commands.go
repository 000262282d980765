package document

// InsertNewline splits the block at the selection and pushes a split-block
// entry.
func InsertNewline(s *State) *State {
	return s.Push(SplitBlock(s.Content(), s.Selection()), ChangeSplitBlock)
}

// InsertCharacters types text over the selection. The new characters take
// the inline style at the insertion point and continue a mutable entity
// when EntityKeyForSelection allows it.
func InsertCharacters(s *State, text string) *State {
	if text == "" {
		return s
	}
	sel := s.Selection()
	c := s.Content()
	b := c.BlockForKey(sel.StartKey())
	if b == nil {
		return s
	}
	style := styleForInsertion(b, sel.StartOffset())
	next := ReplaceText(c, sel, text, style, EntityKeyForSelection(c, sel))
	return s.Push(next, ChangeInsertCharacters)
}

// PlainBackspace applies the canonical backward delete.
//
// A range selection is removed. When the selection is collapsed but
// lastUncollapsed is a range (the platform collapsed it before reporting
// the deletion), that range is removed instead. A caret at the start of a
// block merges it into the previous block, or removes the previous block
// when it is atomic. Otherwise one grapheme cluster is removed.
func PlainBackspace(s *State, lastUncollapsed *Selection) *State {
	sel := s.Selection()
	c := s.Content()
	if sel.IsCollapsed() && lastUncollapsed != nil && !lastUncollapsed.IsCollapsed() {
		sel = *lastUncollapsed
	}

	if !sel.IsCollapsed() {
		next := RemoveRange(c, sel)
		if next == c {
			return s
		}
		return s.Push(next.WithSelections(s.Selection(), next.SelectionAfter()), ChangeRemoveRange)
	}

	key, off := sel.AnchorKey, sel.AnchorOffset
	if off > 0 {
		next := RemoveRange(c, Range(key, off-1, off))
		return s.Push(next.WithSelections(sel, next.SelectionAfter()), ChangeBackspaceCharacter)
	}

	prev := c.BlockBefore(key)
	if prev == nil {
		cur := c.BlockForKey(key)
		if cur == nil || cur.Type() == Unstyled {
			return s
		}
		// Backspace at the very start of a styled first block resets its type.
		next := SetBlockType(c, key, Unstyled).WithSelections(sel, sel)
		return s.Push(next, ChangeBlockType)
	}
	if prev.Type() == Atomic {
		next := RemoveBlock(c, prev.Key(), sel)
		return s.Push(next.WithSelections(sel, sel), ChangeBackspaceCharacter)
	}
	merge := Selection{
		AnchorKey:    prev.Key(),
		AnchorOffset: prev.Len(),
		FocusKey:     key,
		FocusOffset:  0,
	}
	next := RemoveRange(c, merge)
	return s.Push(next.WithSelections(sel, next.SelectionAfter()), ChangeBackspaceCharacter)
}

// styleForInsertion returns the style typed text inherits at offset: the
// style of the preceding character, or of the first character at block
// start.
func styleForInsertion(b *Block, offset int) Style {
	if offset > 0 {
		return b.InlineStyleAt(offset - 1)
	}
	return b.InlineStyleAt(0)
}
