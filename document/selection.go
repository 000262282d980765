package document

// Selection is an anchor/focus pair over block keys and grapheme offsets.
//
// IsBackward is true when the focus precedes the anchor in document order.
type Selection struct {
	AnchorKey    string
	AnchorOffset int
	FocusKey     string
	FocusOffset  int
	IsBackward   bool
	HasFocus     bool
}

// Collapsed returns a caret at offset inside block key.
func Collapsed(key string, offset int) Selection {
	return Selection{
		AnchorKey:    key,
		AnchorOffset: offset,
		FocusKey:     key,
		FocusOffset:  offset,
	}
}

// Range returns a forward selection over [start, end) in one block.
func Range(key string, start, end int) Selection {
	return Selection{
		AnchorKey:    key,
		AnchorOffset: start,
		FocusKey:     key,
		FocusOffset:  end,
	}
}

func (s Selection) IsCollapsed() bool {
	return s.AnchorKey == s.FocusKey && s.AnchorOffset == s.FocusOffset
}

func (s Selection) StartKey() string {
	if s.IsBackward {
		return s.FocusKey
	}
	return s.AnchorKey
}

func (s Selection) StartOffset() int {
	if s.IsBackward {
		return s.FocusOffset
	}
	return s.AnchorOffset
}

func (s Selection) EndKey() string {
	if s.IsBackward {
		return s.AnchorKey
	}
	return s.FocusKey
}

func (s Selection) EndOffset() int {
	if s.IsBackward {
		return s.AnchorOffset
	}
	return s.FocusOffset
}

// SpansBlocks reports whether anchor and focus sit in different blocks.
func (s Selection) SpansBlocks() bool { return s.AnchorKey != s.FocusKey }
