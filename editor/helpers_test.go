package editor

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func wrap(l, r string) func(string) string {
	return func(s string) string { return l + s + r }
}

type noopScheduler struct{}

func (noopScheduler) AfterFunc(time.Duration, func()) {}

// markerStyle renders without ANSI and brackets the runs tests care about.
func markerStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return Style{
		Text:      r.NewStyle(),
		Cursor:    r.NewStyle().Transform(wrap("[", "]")),
		Selection: r.NewStyle().Transform(wrap("{", "}")),
		Bold:      r.NewStyle().Transform(wrap("*", "*")),
		Decorated: r.NewStyle().Transform(wrap("<", ">")),
		Composing: r.NewStyle().Transform(wrap("_", "_")),
		Prefix:    r.NewStyle(),
	}
}
