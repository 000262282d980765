package document

// Leaf is a run of characters sharing one inline style inside a decorator
// range.
type Leaf struct {
	Start int
	End   int
}

// DecoratorRange is a run of characters sharing one decoration (or none).
type DecoratorRange struct {
	Start        int
	End          int
	DecoratorKey string
	Leaves       []Leaf
}

// BlockTree is the decorator/leaf structure the surface renders a block as.
// Every text-bearing surface node corresponds to exactly one leaf, addressed
// by LocationKey{Block, decorator index, leaf index}.
type BlockTree []DecoratorRange

// GenerateBlockTree groups b's characters into decorator ranges and splits
// each range into leaves at inline style changes. An empty block has one
// range holding one empty leaf.
func GenerateBlockTree(b *Block, decorations []string) BlockTree {
	n := b.Len()
	if n == 0 {
		return BlockTree{{Leaves: []Leaf{{}}}}
	}
	decoAt := func(i int) string {
		if i < len(decorations) {
			return decorations[i]
		}
		return ""
	}

	var tree BlockTree
	start := 0
	for i := 1; i <= n; i++ {
		if i < n && decoAt(i) == decoAt(start) {
			continue
		}
		tree = append(tree, DecoratorRange{
			Start:        start,
			End:          i,
			DecoratorKey: decoAt(start),
			Leaves:       leavesFor(b, start, i),
		})
		start = i
	}
	return tree
}

func leavesFor(b *Block, start, end int) []Leaf {
	var leaves []Leaf
	from := start
	for i := start + 1; i <= end; i++ {
		if i < end && b.InlineStyleAt(i) == b.InlineStyleAt(from) {
			continue
		}
		leaves = append(leaves, Leaf{Start: from, End: i})
		from = i
	}
	return leaves
}

// Leaf returns the leaf at (decorator, leaf), if present.
func (t BlockTree) Leaf(decorator, leaf int) (Leaf, bool) {
	if decorator < 0 || decorator >= len(t) {
		return Leaf{}, false
	}
	leaves := t[decorator].Leaves
	if leaf < 0 || leaf >= len(leaves) {
		return Leaf{}, false
	}
	return leaves[leaf], true
}

// LocationKeys lists the location keys of every leaf in render order.
func (t BlockTree) LocationKeys(blockKey string) []LocationKey {
	var out []LocationKey
	for d, r := range t {
		for l := range r.Leaves {
			out = append(out, LocationKey{BlockKey: blockKey, Decorator: d, Leaf: l})
		}
	}
	return out
}

// LeafAt returns the location of the leaf holding offset. An offset at a
// leaf boundary belongs to the leaf that ends there, matching where a caret
// inserts text.
func (t BlockTree) LeafAt(blockKey string, offset int) (LocationKey, Leaf) {
	for d, r := range t {
		for l, leaf := range r.Leaves {
			if offset >= leaf.Start && offset <= leaf.End {
				return LocationKey{BlockKey: blockKey, Decorator: d, Leaf: l}, leaf
			}
		}
	}
	last := len(t) - 1
	ll := len(t[last].Leaves) - 1
	return LocationKey{BlockKey: blockKey, Decorator: last, Leaf: ll}, t[last].Leaves[ll]
}
