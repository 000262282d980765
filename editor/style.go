package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/compose/document"
)

// Style controls the editor's rendering.
type Style struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Inline styles, layered over Text per character.
	Bold          lipgloss.Style
	Italic        lipgloss.Style
	Underline     lipgloss.Style
	Code          lipgloss.Style
	Strikethrough lipgloss.Style

	// Decorated marks runs produced by the trigger decorator.
	Decorated lipgloss.Style
	// Composing marks surface text an input method has not committed yet.
	Composing lipgloss.Style
	// Prefix renders block markers such as "# " and "> ".
	Prefix lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Bold:          lipgloss.NewStyle().Bold(true),
		Italic:        lipgloss.NewStyle().Italic(true),
		Underline:     lipgloss.NewStyle().Underline(true),
		Code:          lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Strikethrough: lipgloss.NewStyle().Strikethrough(true),
		Decorated:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Composing:     lipgloss.NewStyle().Underline(true),
		Prefix:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// inline returns Text layered with every inline style set in st, and with
// Decorated when decorated is true.
func (s Style) inline(st document.Style, decorated bool) lipgloss.Style {
	out := s.Text
	layers := []struct {
		bit   document.Style
		style lipgloss.Style
	}{
		{document.Bold, s.Bold},
		{document.Italic, s.Italic},
		{document.Underline, s.Underline},
		{document.Code, s.Code},
		{document.Strikethrough, s.Strikethrough},
	}
	for _, l := range layers {
		if st.Has(l.bit) {
			out = out.Inherit(l.style)
		}
	}
	if decorated {
		out = out.Inherit(s.Decorated)
	}
	return out
}
