package composition

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys a Session treats specially.
type KeyMap struct {
	// Caret keys are suppressed while composing: committing with an arrow
	// must not also move the caret when the surface re-renders.
	Left, Right key.Binding
	// Enter key presses are suppressed; some platforms insert an extra line
	// break when Enter commits a composition.
	Enter key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "commit without moving")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "commit without moving")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
	}
}
