package document

import (
	"strconv"

	"github.com/iw2rmb/compose/internal/grapheme"
)

// Decorator assigns decoration runs to the characters of a block.
//
// Decorations returns one entry per grapheme cluster of b: "" for plain
// text, otherwise an identifier shared by every character of the same run.
// Adjacent runs must use distinct identifiers.
type Decorator interface {
	Decorations(b *Block, c *Content) []string
}

// TriggerDecorator decorates runs that begin with one of Triggers, at block
// start or after whitespace, and extend up to the next whitespace. This is
// the shape of mentions ("@bob") and hashtags ("#go").
type TriggerDecorator struct {
	Triggers []string
}

func (d TriggerDecorator) Decorations(b *Block, _ *Content) []string {
	out := make([]string, b.Len())
	if len(d.Triggers) == 0 {
		return out
	}
	run := 0
	for i := 0; i < b.Len(); i++ {
		ch := b.Char(i)
		if !d.isTrigger(ch) || (i > 0 && !grapheme.IsSpace(b.Char(i-1))) {
			continue
		}
		id := ch + strconv.Itoa(run)
		run++
		out[i] = id
		j := i + 1
		for j < b.Len() && !grapheme.IsSpace(b.Char(j)) {
			out[j] = id
			j++
		}
		i = j - 1
	}
	return out
}

func (d TriggerDecorator) isTrigger(ch string) bool {
	for _, t := range d.Triggers {
		if t == ch {
			return true
		}
	}
	return false
}
