package editor

import (
	"github.com/iw2rmb/compose/composition"
	"github.com/iw2rmb/compose/document"
)

// Platform composition events. A host that owns an input method (or a test
// or replay driver) feeds these into Update.
type (
	// CompositionStartMsg reports that an input method began composing.
	CompositionStartMsg struct{}

	// CompositionEndMsg reports that the input method ended composing with
	// the committed text Data.
	CompositionEndMsg struct {
		Data string
	}

	// SurfaceMutationMsg reports the text the surface now shows at the leaf
	// addressed by Key, an encoded document.LocationKey. It is recorded only
	// while a composition is in flight.
	SurfaceMutationMsg struct {
		Key  string
		Text string
	}

	// KeyDownMsg and KeyPressMsg carry platform key events that did not
	// arrive as tea.KeyMsg, such as key code 229 from an input method.
	KeyDownMsg  composition.KeyEvent
	KeyPressMsg composition.KeyEvent

	// InputMsg carries a platform input event. For backward deletions Data,
	// when set, is the text the surface shows for the caret block after the
	// deletion; otherwise the editor derives it.
	InputMsg composition.InputEvent
)

type ChangeEvent struct {
	Version   uint64
	Change    document.ChangeType
	Selection document.Selection
	UndoDepth int

	// v0: simplest payload; host can diff if needed.
	Text string
}

func buildChangeEvent(st *document.State) ChangeEvent {
	return ChangeEvent{
		Version:   st.Content().Version(),
		Change:    st.LastChangeType(),
		Selection: st.Selection(),
		UndoDepth: st.UndoDepth(),
		Text:      st.Content().PlainText(),
	}
}
