package document

// Options configures a State.
type Options struct {
	HistoryLimit int // default: 1000
	Decorator    Decorator
}

type historyState struct {
	undo []*Content
	redo []*Content
}

// State is an immutable editor state: the current Content, the selection,
// the decorator, composition mode, and a bounded linear undo/redo history.
// Every method that changes something returns a new State.
type State struct {
	content    *Content
	selection  Selection
	opt        Options
	hist       historyState
	lastChange ChangeType

	inComposition bool

	trees map[string]BlockTree
}

// NewState returns a State over c with the caret at its selectionAfter.
func NewState(c *Content, opt Options) *State {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	if c == nil {
		c = NewContent()
	}
	return &State{
		content:   c,
		selection: c.SelectionAfter(),
		opt:       opt,
	}
}

func (s *State) Content() *Content { return s.content }

func (s *State) Selection() Selection { return s.selection }

func (s *State) Decorator() Decorator { return s.opt.Decorator }

func (s *State) InCompositionMode() bool { return s.inComposition }

func (s *State) LastChangeType() ChangeType { return s.lastChange }

func (s *State) CanUndo() bool { return len(s.hist.undo) > 0 }

func (s *State) CanRedo() bool { return len(s.hist.redo) > 0 }

// UndoDepth returns the number of entries on the undo stack.
func (s *State) UndoDepth() int { return len(s.hist.undo) }

// BlockTree returns the decorator/leaf tree of the block with key, or nil
// when no such block exists. Trees are computed once per State.
func (s *State) BlockTree(key string) BlockTree {
	if t, ok := s.trees[key]; ok {
		return t
	}
	b := s.content.BlockForKey(key)
	if b == nil {
		return nil
	}
	var decorations []string
	if s.opt.Decorator != nil {
		decorations = s.opt.Decorator.Decorations(b, s.content)
	}
	t := GenerateBlockTree(b, decorations)
	if s.trees == nil {
		s.trees = map[string]BlockTree{}
	}
	s.trees[key] = t
	return t
}

// WithSelection returns a State with sel as its selection.
func (s *State) WithSelection(sel Selection) *State {
	if s.selection == sel {
		return s
	}
	out := s.clone()
	out.selection = sel
	return out
}

// WithCompositionMode returns a State with the composition flag set to on.
func (s *State) WithCompositionMode(on bool) *State {
	if s.inComposition == on {
		return s
	}
	out := s.clone()
	out.inComposition = on
	return out
}

// WithContent swaps the current Content without touching history. Block
// trees are recomputed lazily against the new Content.
func (s *State) WithContent(c *Content) *State {
	if s.content == c {
		return s
	}
	out := s.clone()
	out.content = c
	out.trees = nil
	return out
}

// Push commits c as a new history entry labelled change. The previous
// Content goes on the undo stack, the redo stack is cleared, and the
// selection moves to c's selectionAfter. Pushing the current Content is a
// no-op.
func (s *State) Push(c *Content, change ChangeType) *State {
	if c == s.content {
		return s
	}
	out := s.clone()
	out.content = c
	out.trees = nil
	out.selection = c.SelectionAfter()
	out.lastChange = change
	out.hist.undo = appendBounded(s.hist.undo, s.content, s.opt.HistoryLimit)
	out.hist.redo = nil
	return out
}

// Undo restores the previous Content and places the selection where it was
// before the undone edit. It returns s when there is nothing to undo.
func (s *State) Undo() *State {
	if len(s.hist.undo) == 0 {
		return s
	}
	i := len(s.hist.undo) - 1
	prev := s.hist.undo[i]

	out := s.clone()
	out.content = prev
	out.trees = nil
	out.selection = s.content.SelectionBefore()
	out.hist.undo = s.hist.undo[:i:i]
	out.hist.redo = append(append([]*Content(nil), s.hist.redo...), s.content)
	out.lastChange = ""
	return out
}

// Redo re-applies the most recently undone Content.
func (s *State) Redo() *State {
	if len(s.hist.redo) == 0 {
		return s
	}
	i := len(s.hist.redo) - 1
	next := s.hist.redo[i]

	out := s.clone()
	out.content = next
	out.trees = nil
	out.selection = next.SelectionAfter()
	out.hist.undo = appendBounded(s.hist.undo, s.content, s.opt.HistoryLimit)
	out.hist.redo = s.hist.redo[:i:i]
	out.lastChange = ""
	return out
}

func (s *State) clone() *State {
	out := *s
	return &out
}

func appendBounded(stack []*Content, c *Content, limit int) []*Content {
	if limit <= 0 {
		return nil
	}
	out := make([]*Content, 0, len(stack)+1)
	out = append(out, stack...)
	out = append(out, c)
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}
