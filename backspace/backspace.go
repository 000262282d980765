// Package backspace decides whether a backward delete the surface already
// rendered needs a structural model edit, and runs that edit when it does.
package backspace

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/compose/document"
	"github.com/iw2rmb/compose/internal/grapheme"
	"github.com/iw2rmb/compose/textdiff"
)

// Result is the outcome of Classify.
type Result uint8

const (
	// NoOp means the surface and the model agree closely enough that no
	// model change is needed.
	NoOp Result = iota
	// StructuralBackspace means the canonical backward-delete command must
	// run: blocks are merging or a decorator trigger was removed.
	StructuralBackspace
)

func (r Result) String() string {
	switch r {
	case NoOp:
		return "no-op"
	case StructuralBackspace:
		return "structural-backspace"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// Reason records which rule produced a Result.
type Reason uint8

const (
	ReasonInSync Reason = iota
	ReasonBlockMerge
	ReasonDecorator
	ReasonPlainText
)

func (r Reason) String() string {
	switch r {
	case ReasonInSync:
		return "in-sync"
	case ReasonBlockMerge:
		return "block-merge"
	case ReasonDecorator:
		return "decorator"
	case ReasonPlainText:
		return "plain-text"
	default:
		return fmt.Sprintf("Reason(%d)", uint8(r))
	}
}

// TriggerSet is an ordered set of single-grapheme decorator triggers.
type TriggerSet []string

// ParseTriggers validates and deduplicates triggers, keeping first-seen
// order.
func ParseTriggers(triggers ...string) (TriggerSet, error) {
	out := make(TriggerSet, 0, len(triggers))
	for _, t := range triggers {
		if grapheme.Count(t) != 1 {
			return nil, fmt.Errorf("backspace: decorator trigger %q must be a single character", t)
		}
		if !out.Contains(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Contains reports whether ch is exactly one of the triggers.
func (ts TriggerSet) Contains(ch string) bool {
	for _, t := range ts {
		if t == ch {
			return true
		}
	}
	return false
}

// Within reports whether s contains any trigger.
func (ts TriggerSet) Within(s string) bool {
	for _, t := range ts {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// Input is what Classify looks at.
type Input struct {
	// SurfaceText is the block text the surface shows after the deletion.
	SurfaceText string
	// ModelText is the block text the model held when the deletion fired.
	ModelText string
	// Block is the model block the deletion happened in.
	Block *document.Block
	// Selection is the model selection when the deletion fired.
	Selection document.Selection
	// LastUncollapsed is the last range selection seen, if any.
	LastUncollapsed *document.Selection
	Triggers        TriggerSet
}

// Classify decides what a backward delete needs.
//
// The rules apply in order: identical texts are a NoOp; a caret at block
// start or a last range selection spanning two blocks is a block merge; a
// removed trigger character is a decorator deletion; anything else is a
// plain-text NoOp.
//
// The event diff is textdiff.Removed(ModelText, SurfaceText): what the
// surface dropped from the model text. The state diff is
// textdiff.Diff(Block.Text(), ModelText), meaningful when a range selection
// was active and the block still holds the pre-deletion text.
func Classify(in Input) (Result, Reason) {
	if in.SurfaceText == in.ModelText {
		return NoOp, ReasonInSync
	}
	if isBlockMerge(in.Selection, in.LastUncollapsed) {
		return StructuralBackspace, ReasonBlockMerge
	}
	if len(in.Triggers) > 0 && isDecoratorDeletion(in) {
		return StructuralBackspace, ReasonDecorator
	}
	return NoOp, ReasonPlainText
}

func isBlockMerge(sel document.Selection, last *document.Selection) bool {
	if sel.AnchorOffset == 0 {
		return true
	}
	return last != nil && last.SpansBlocks()
}

func isDecoratorDeletion(in Input) bool {
	eventDiff := textdiff.Removed(in.ModelText, in.SurfaceText)
	if in.Triggers.Contains(eventDiff) {
		return true
	}
	if in.Block == nil {
		return false
	}
	stateDiff := textdiff.Diff(in.Block.Text(), in.ModelText)
	return in.Triggers.Within(stateDiff)
}

// DeleteContentBackward reconciles a backward delete the surface reported
// through an input event rather than a keystroke. A StructuralBackspace
// runs document.PlainBackspace; a NoOp returns state unchanged.
func DeleteContentBackward(surfaceText, modelText string, block *document.Block, state *document.State, lastUncollapsed *document.Selection, triggers TriggerSet) *document.State {
	res, _ := Classify(Input{
		SurfaceText:     surfaceText,
		ModelText:       modelText,
		Block:           block,
		Selection:       state.Selection(),
		LastUncollapsed: lastUncollapsed,
		Triggers:        triggers,
	})
	if res == NoOp {
		return state
	}
	return document.PlainBackspace(state, lastUncollapsed)
}
