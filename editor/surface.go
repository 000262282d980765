package editor

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/iw2rmb/compose/backspace"
	"github.com/iw2rmb/compose/composition"
	"github.com/iw2rmb/compose/document"
)

// Mode is the editor's input mode.
type Mode uint8

const (
	ModeEdit Mode = iota
	ModeComposition
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeComposition:
		return "composition"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// surface is the rendered side of the editor and the composition host. It
// is shared by every copy of a Model.
type surface struct {
	state *document.State

	km       KeyMap
	style    Style
	triggers backspace.TriggerSet
	log      *slog.Logger

	viewport viewport.Model
	recorder *Recorder
	focused  bool
	mode     Mode

	// lastUncollapsed is the most recent range selection, kept for backward
	// deletions the platform reports after collapsing it.
	lastUncollapsed *document.Selection

	desync   map[string]struct{}
	resyncs  int
	restores int
}

var _ composition.Host = (*surface)(nil)

func (s *surface) LatestState() *document.State { return s.state }

func (s *surface) Update(st *document.State) {
	s.setState(st)
	s.rebuild()
}

func (s *surface) ExitCurrentMode() {
	s.mode = ModeEdit
}

func (s *surface) ScrollPosition() composition.Point {
	return composition.Point{Y: s.viewport.YOffset}
}

func (s *surface) RestoreSurface(p composition.Point) {
	s.restores++
	s.rebuild()
	s.viewport.SetYOffset(p.Y)
}

func (s *surface) RegisterDesynchronizedBlock(key string) {
	if s.desync == nil {
		s.desync = map[string]struct{}{}
	}
	s.desync[key] = struct{}{}
}

func (s *surface) ResyncDesynchronizedBlocks() {
	if len(s.desync) == 0 {
		return
	}
	s.log.Debug("editor: resync blocks", slog.Int("count", len(s.desync)))
	s.desync = nil
	s.resyncs++
	s.rebuild()
}

func (s *surface) HandleKeyDown(ev composition.KeyEvent) {
	s.handleKey(ev, keyText(ev.Key))
}

func (s *surface) HandleInput(ev composition.InputEvent) {
	if ev.Type != composition.InputDeleteContentBackward {
		return
	}
	s.deleteContentBackward(ev.Data)
}

func (s *surface) setState(st *document.State) {
	sel := st.Selection()
	switch {
	case !sel.IsCollapsed():
		s.lastUncollapsed = &sel
	case !s.collapsesLastRange(st):
		s.lastUncollapsed = nil
	}
	s.state = st
}

// collapsesLastRange reports whether st only collapses the last range
// selection to its start, which is what platforms do right before
// reporting a backward deletion of that range.
func (s *surface) collapsesLastRange(st *document.State) bool {
	last := s.lastUncollapsed
	if last == nil || s.state == nil || st.Content() != s.state.Content() {
		return false
	}
	return st.Selection() == document.Collapsed(last.StartKey(), last.StartOffset())
}

func (s *surface) rebuild() {
	s.viewport.SetContent(s.render())
	s.followCaret()
}

func (s *surface) followCaret() {
	h := s.viewport.Height - s.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := s.blockRow(s.state.Selection().FocusKey)
	y := s.viewport.YOffset
	if row < y {
		s.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		s.viewport.SetYOffset(row - h + 1)
	}
}

func (s *surface) blockRow(key string) int {
	for i, b := range s.state.Content().Blocks() {
		if b.Key() == key {
			return i
		}
	}
	return 0
}
