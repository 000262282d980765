package document

import (
	"strconv"
	"strings"
)

// Content is an immutable snapshot of the document: ordered blocks, the
// entity map, and the selections bracketing the edit that produced it.
//
// Every derived Content has Version one greater than its parent.
type Content struct {
	blocks   []*Block
	index    map[string]int
	entities map[string]Entity
	keySeq   int
	version  uint64

	selectionBefore Selection
	selectionAfter  Selection
}

// NewContent builds a Content from blocks. An empty list yields one empty
// unstyled block so every Content has a place for the caret.
func NewContent(blocks ...*Block) *Content {
	c := &Content{entities: map[string]Entity{}}
	if len(blocks) == 0 {
		blocks = []*Block{NewBlock(c.nextKey(), Unstyled, "")}
	}
	c.setBlocks(blocks)
	first := c.blocks[0].Key()
	c.selectionBefore = Collapsed(first, 0)
	c.selectionAfter = c.selectionBefore
	return c
}

// FromText splits text on '\n' into unstyled blocks keyed "b1", "b2", ...
func FromText(text string) *Content {
	c := &Content{entities: map[string]Entity{}}
	parts := strings.Split(text, "\n")
	blocks := make([]*Block, 0, len(parts))
	for _, p := range parts {
		blocks = append(blocks, NewBlock(c.nextKey(), Unstyled, p))
	}
	c.setBlocks(blocks)
	c.selectionBefore = Collapsed(c.blocks[0].Key(), 0)
	c.selectionAfter = c.selectionBefore
	return c
}

func (c *Content) Version() uint64 { return c.version }

// Blocks returns the block list in document order. The slice is a copy.
func (c *Content) Blocks() []*Block { return append([]*Block(nil), c.blocks...) }

// BlockForKey returns the block with key, or nil.
func (c *Content) BlockForKey(key string) *Block {
	i, ok := c.index[key]
	if !ok {
		return nil
	}
	return c.blocks[i]
}

// BlockBefore returns the block preceding key, or nil.
func (c *Content) BlockBefore(key string) *Block {
	i, ok := c.index[key]
	if !ok || i == 0 {
		return nil
	}
	return c.blocks[i-1]
}

// BlockAfter returns the block following key, or nil.
func (c *Content) BlockAfter(key string) *Block {
	i, ok := c.index[key]
	if !ok || i+1 >= len(c.blocks) {
		return nil
	}
	return c.blocks[i+1]
}

func (c *Content) FirstBlock() *Block { return c.blocks[0] }

func (c *Content) LastBlock() *Block { return c.blocks[len(c.blocks)-1] }

// PlainText joins block texts with '\n'.
func (c *Content) PlainText() string {
	var sb strings.Builder
	for i, b := range c.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Text())
	}
	return sb.String()
}

// Entity returns the entity stored under key.
func (c *Content) Entity(key string) (Entity, bool) {
	e, ok := c.entities[key]
	return e, ok
}

func (c *Content) SelectionBefore() Selection { return c.selectionBefore }

func (c *Content) SelectionAfter() Selection { return c.selectionAfter }

// WithBlock derives a Content where the block sharing b's key is replaced,
// or b is appended when no such block exists.
func (c *Content) WithBlock(b *Block) *Content {
	out := c.derive()
	if i, ok := c.index[b.Key()]; ok {
		out.blocks[i] = b
		return out
	}
	out.setBlocks(append(out.blocks, b))
	return out
}

// WithEntity derives a Content holding e and returns the new entity key.
func (c *Content) WithEntity(e Entity) (*Content, string) {
	out := c.derive()
	out.entities = make(map[string]Entity, len(c.entities)+1)
	for k, v := range c.entities {
		out.entities[k] = v
	}
	key := strconv.Itoa(len(c.entities) + 1)
	out.entities[key] = e
	return out, key
}

// WithSelections derives a Content with the given surrounding selections.
func (c *Content) WithSelections(before, after Selection) *Content {
	out := c.derive()
	out.selectionBefore = before
	out.selectionAfter = after
	return out
}

func (c *Content) derive() *Content {
	out := *c
	out.blocks = append([]*Block(nil), c.blocks...)
	out.version = c.version + 1
	return &out
}

// replaceBlocks swaps blocks[start:end] for repl.
func (c *Content) replaceBlocks(start, end int, repl ...*Block) *Content {
	out := c.derive()
	next := make([]*Block, 0, len(c.blocks)-(end-start)+len(repl))
	next = append(next, c.blocks[:start]...)
	next = append(next, repl...)
	next = append(next, c.blocks[end:]...)
	out.setBlocks(next)
	return out
}

func (c *Content) setBlocks(blocks []*Block) {
	c.blocks = blocks
	c.index = make(map[string]int, len(blocks))
	for i, b := range blocks {
		c.index[b.Key()] = i
	}
}

// nextKey returns a fresh block key. The counter lives on the Content so
// keys stay deterministic for a given edit sequence.
func (c *Content) nextKey() string {
	for {
		c.keySeq++
		key := "b" + strconv.Itoa(c.keySeq)
		if _, taken := c.index[key]; !taken {
			return key
		}
	}
}
