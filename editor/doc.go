// Package editor provides a Bubble Tea block editor component backed by the
// document package.
//
// The component is the composition host: it owns the editor state, renders
// blocks and leaves with lipgloss inside a viewport, records surface
// mutations while an input method composes, and runs deferred composition
// work as Bubble Tea commands. Ordinary key handling (caret movement,
// typing, backspace, split, undo/redo) goes through a KeyMap of bubbles key
// bindings.
package editor
