package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/compose"
	"github.com/iw2rmb/compose/composition"
	"github.com/iw2rmb/compose/document"
	"github.com/iw2rmb/compose/editor"
)

var errUnknownOp = errors.New("unknown op")

// Script is a recorded event sequence.
type Script struct {
	// Version is the engine version the script was recorded with.
	Version   string        `yaml:"version"`
	Blocks    []BlockSpec   `yaml:"blocks"`
	Selection SelectionSpec `yaml:"selection"`
	Steps     []Step        `yaml:"steps"`
}

type BlockSpec struct {
	Key    string      `yaml:"key"`
	Type   string      `yaml:"type"`
	Text   string      `yaml:"text"`
	Styles []StyleSpan `yaml:"styles"`
}

// StyleSpan applies inline styles to [Start, End) of a block.
type StyleSpan struct {
	Start int      `yaml:"start"`
	End   int      `yaml:"end"`
	Style []string `yaml:"style"`
}

type SelectionSpec struct {
	Block       string `yaml:"block"`
	Offset      int    `yaml:"offset"`
	FocusBlock  string `yaml:"focus_block"`
	FocusOffset *int   `yaml:"focus_offset"`
}

// Step is one event. Op selects which of the other fields apply:
//
//	compositionstart
//	compositionend  data
//	mutate          block, decorator, leaf, text
//	preedit         text
//	keydown         key, code
//	keypress        key
//	input           type, data
//	backspace       surface
//	type            text
//	select          block, offset, focus_block, focus_offset
//	advance         ms
type Step struct {
	Op string `yaml:"op"`

	Data      string `yaml:"data"`
	Block     string `yaml:"block"`
	Decorator int    `yaml:"decorator"`
	Leaf      int    `yaml:"leaf"`
	Text      string `yaml:"text"`
	Key       string `yaml:"key"`
	Code      int    `yaml:"code"`
	Type      string `yaml:"type"`
	Surface   string `yaml:"surface"`
	Ms        int    `yaml:"ms"`

	Offset      int    `yaml:"offset"`
	FocusBlock  string `yaml:"focus_block"`
	FocusOffset *int   `yaml:"focus_offset"`
}

func loadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}
	if !compose.Compatible(sc.Version) {
		return nil, fmt.Errorf("script recorded with engine %s, this is %s", sc.Version, compose.VersionTag())
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &sc, nil
}

func (s Step) validate() error {
	switch s.Op {
	case "compositionstart", "compositionend", "mutate", "preedit", "keydown",
		"keypress", "input", "backspace", "type", "select":
		return nil
	case "advance":
		if s.Ms < 0 {
			return errors.New("advance: ms must not be negative")
		}
		return nil
	default:
		return fmt.Errorf("%w %q", errUnknownOp, s.Op)
	}
}

// content builds the initial document. A script without blocks starts from
// one empty block.
func (sc *Script) content() (*document.Content, error) {
	blocks := make([]*document.Block, 0, len(sc.Blocks))
	for i, bs := range sc.Blocks {
		key := bs.Key
		if key == "" {
			key = fmt.Sprintf("b%d", i+1)
		}
		typ := document.BlockType(bs.Type)
		if typ == "" {
			typ = document.Unstyled
		}
		blocks = append(blocks, document.NewBlock(key, typ, bs.Text))
	}
	c := document.NewContent(blocks...)
	for i, bs := range sc.Blocks {
		key := c.Blocks()[i].Key()
		for _, span := range bs.Styles {
			st, err := document.ParseStyle(span.Style...)
			if err != nil {
				return nil, fmt.Errorf("block %s: %w", key, err)
			}
			c = document.ApplyInlineStyle(c, document.Range(key, span.Start, span.End), st)
		}
	}
	return c, nil
}

func selection(c *document.Content, block string, offset int, focusBlock string, focusOffset *int) document.Selection {
	if block == "" {
		block = c.FirstBlock().Key()
	}
	sel := document.Collapsed(block, offset)
	if focusOffset != nil {
		if focusBlock == "" {
			focusBlock = block
		}
		sel.FocusKey, sel.FocusOffset = focusBlock, *focusOffset
		sel.IsBackward = focusBlock == block && *focusOffset < offset
	}
	return sel
}

// msg translates s into the editor message it replays as. Advance and
// select steps are handled by the runner and return nil.
func (s Step) msg(m editor.Model) tea.Msg {
	switch s.Op {
	case "compositionstart":
		return editor.CompositionStartMsg{}
	case "compositionend":
		return editor.CompositionEndMsg{Data: s.Data}
	case "mutate":
		loc := document.LocationKey{BlockKey: s.Block, Decorator: s.Decorator, Leaf: s.Leaf}
		return editor.SurfaceMutationMsg{Key: loc.Encode(), Text: s.Text}
	case "preedit":
		return m.PreeditMsg(s.Text)
	case "keydown":
		return editor.KeyDownMsg{Key: s.Key, Code: s.Code}
	case "keypress":
		return editor.KeyPressMsg{Key: s.Key}
	case "input":
		return editor.InputMsg{Type: composition.InputType(s.Type), Data: s.Data}
	case "backspace":
		return editor.InputMsg{Type: composition.InputDeleteContentBackward, Data: s.Surface}
	case "type":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s.Text)}
	default:
		return nil
	}
}

func (s Step) advance() time.Duration { return time.Duration(s.Ms) * time.Millisecond }
