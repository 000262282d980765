package composition

import (
	"fmt"

	"github.com/iw2rmb/compose/document"
)

// Target is the model span a surface mutation replaces.
type Target struct {
	Location document.LocationKey
	BlockKey string
	Start    int
	End      int

	// Range selects exactly [Start, End) in BlockKey.
	Range document.Selection
	// Style is the inline style at Start; replacement text inherits it.
	Style document.Style
	// EntityKey is the entity the replacement continues, or "".
	EntityKey string
}

// ResolveTarget maps an encoded location key to the span it covers in
// state. Keys inside atomic blocks return ErrSkip. Keys that do not decode or
// that name a missing block or leaf return an error wrapping
// document.ErrMalformedLocationKey, ErrUnknownBlock, or ErrUnknownLeaf.
func ResolveTarget(key string, state *document.State) (Target, error) {
	loc, err := document.DecodeLocationKey(key)
	if err != nil {
		return Target{}, err
	}
	content := state.Content()
	block := content.BlockForKey(loc.BlockKey)
	if block == nil {
		return Target{}, fmt.Errorf("%w: %q", ErrUnknownBlock, loc.BlockKey)
	}
	if block.Type() == document.Atomic {
		return Target{}, fmt.Errorf("%w: atomic block %q", ErrSkip, loc.BlockKey)
	}
	leaf, ok := state.BlockTree(loc.BlockKey).Leaf(loc.Decorator, loc.Leaf)
	if !ok {
		return Target{}, fmt.Errorf("%w: %s", ErrUnknownLeaf, loc)
	}

	rng := state.Selection()
	rng.AnchorKey, rng.AnchorOffset = loc.BlockKey, leaf.Start
	rng.FocusKey, rng.FocusOffset = loc.BlockKey, leaf.End
	rng.IsBackward = false

	return Target{
		Location:  loc,
		BlockKey:  loc.BlockKey,
		Start:     leaf.Start,
		End:       leaf.End,
		Range:     rng,
		Style:     block.InlineStyleAt(leaf.Start),
		EntityKey: document.EntityKeyForSelection(content, rng),
	}, nil
}
