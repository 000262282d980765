package document

import (
	"fmt"
	"strings"
)

// BlockType identifies how a block renders. Atomic blocks are non-text embeds
// and never receive text mutations.
type BlockType string

const (
	Unstyled          BlockType = "unstyled"
	HeaderOne         BlockType = "header-one"
	HeaderTwo         BlockType = "header-two"
	Blockquote        BlockType = "blockquote"
	CodeBlock         BlockType = "code-block"
	UnorderedListItem BlockType = "unordered-list-item"
	OrderedListItem   BlockType = "ordered-list-item"
	Atomic            BlockType = "atomic"
)

// Style is a set of inline styles applied to one character.
type Style uint8

const (
	Bold Style = 1 << iota
	Italic
	Underline
	Code
	Strikethrough
)

var styleNames = []struct {
	s    Style
	name string
}{
	{Bold, "BOLD"},
	{Italic, "ITALIC"},
	{Underline, "UNDERLINE"},
	{Code, "CODE"},
	{Strikethrough, "STRIKETHROUGH"},
}

func (s Style) Has(o Style) bool { return s&o == o }

func (s Style) String() string {
	if s == 0 {
		return ""
	}
	parts := make([]string, 0, len(styleNames))
	for _, n := range styleNames {
		if s.Has(n.s) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseStyle parses style names such as "BOLD" or "italic" into a Style.
func ParseStyle(names ...string) (Style, error) {
	var out Style
	for _, raw := range names {
		name := strings.ToUpper(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		found := false
		for _, n := range styleNames {
			if n.name == name {
				out |= n.s
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("document: unknown inline style %q", raw)
		}
	}
	return out, nil
}

// CharMeta is the per-character metadata carried alongside block text.
type CharMeta struct {
	Style  Style
	Entity string
}

// Mutability controls how an entity reacts to edits inside its range.
type Mutability uint8

const (
	// Mutable entities continue across edits (e.g. links).
	Mutable Mutability = iota
	// Immutable entities are removed as a whole when any part is deleted.
	Immutable
	// Segmented entities behave like Immutable for continuation purposes.
	Segmented
)

func (m Mutability) String() string {
	switch m {
	case Mutable:
		return "MUTABLE"
	case Immutable:
		return "IMMUTABLE"
	case Segmented:
		return "SEGMENTED"
	default:
		return fmt.Sprintf("Mutability(%d)", uint8(m))
	}
}

// Entity is metadata attached to a range of characters, such as a link or
// a mention. Entities are referenced by key from CharMeta.
type Entity struct {
	Type       string
	Mutability Mutability
	Data       map[string]string
}

// ChangeType labels an entry in the undo history.
type ChangeType string

const (
	ChangeInsertCharacters   ChangeType = "insert-characters"
	ChangeBackspaceCharacter ChangeType = "backspace-character"
	ChangeRemoveRange        ChangeType = "remove-range"
	ChangeSplitBlock         ChangeType = "split-block"
	ChangeBlockType          ChangeType = "change-block-type"
	ChangeInlineStyle        ChangeType = "change-inline-style"
	ChangeApplyEntity        ChangeType = "apply-entity"
)
