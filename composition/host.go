package composition

import (
	"strconv"

	"github.com/iw2rmb/compose/document"
)

// Point is a surface scroll position.
type Point struct {
	X, Y int
}

// BlockSyncer tracks blocks whose surface must be rebuilt from the model
// because reconciliation changed them behind the surface's back.
type BlockSyncer interface {
	RegisterDesynchronizedBlock(key string)
	ResyncDesynchronizedBlocks()
}

// Host is the editor a Session reconciles into.
type Host interface {
	BlockSyncer

	// LatestState returns the last committed editor state.
	LatestState() *document.State
	// Update commits state and re-renders.
	Update(state *document.State)
	// ExitCurrentMode leaves composition handling and returns to ordinary
	// editing.
	ExitCurrentMode()
	// ScrollPosition reports the current surface scroll position.
	ScrollPosition() Point
	// RestoreSurface rebuilds the surface from the model and restores
	// selection and scroll position p.
	RestoreSurface(p Point)
	// HandleKeyDown runs ordinary key-down handling.
	HandleKeyDown(ev KeyEvent)
	// HandleInput runs ordinary input-event handling.
	HandleInput(ev InputEvent)
}

// KeyCodeIMEProcessed is the key code platforms report for key events an
// input method has already consumed.
const KeyCodeIMEProcessed = 229

// KeyEvent is a platform key event reduced to what the Session needs. Key is
// a binding name such as "left", "enter", or "a".
type KeyEvent struct {
	Key  string
	Code int
}

// String returns Key so a KeyEvent can be matched against key.Binding.
func (e KeyEvent) String() string {
	if e.Key == "" {
		return "code(" + strconv.Itoa(e.Code) + ")"
	}
	return e.Key
}

// IMEProcessed reports whether the event carries the IME-processed code.
func (e KeyEvent) IMEProcessed() bool { return e.Code == KeyCodeIMEProcessed }

// InputType names a platform input event, e.g. "deleteContentBackward".
type InputType string

const (
	InputDeleteContentBackward InputType = "deleteContentBackward"
	InputInsertText            InputType = "insertText"
	InputInsertCompositionText InputType = "insertCompositionText"
)

// InputEvent is a platform input event.
type InputEvent struct {
	Type InputType
	Data string
}

// KeyAction tells the adapter what to do with the platform key event.
type KeyAction uint8

const (
	// KeyPassThrough lets the platform default run.
	KeyPassThrough KeyAction = iota
	// KeyPreventDefault suppresses the platform default.
	KeyPreventDefault
	// KeyIgnored means the event was dropped.
	KeyIgnored
	// KeyDispatched means the session resolved and handed the event to the
	// host's ordinary key handling.
	KeyDispatched
)

func (a KeyAction) String() string {
	switch a {
	case KeyPassThrough:
		return "pass-through"
	case KeyPreventDefault:
		return "prevent-default"
	case KeyIgnored:
		return "ignored"
	case KeyDispatched:
		return "dispatched"
	default:
		return "KeyAction(" + strconv.Itoa(int(a)) + ")"
	}
}
