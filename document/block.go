package document

import "github.com/iw2rmb/compose/internal/grapheme"

// Block is one immutable paragraph-level node: text split into grapheme
// clusters, with one CharMeta per cluster.
type Block struct {
	key   string
	typ   BlockType
	chars []string
	meta  []CharMeta
	depth int
}

// NewBlock returns an unstyled, entity-free block holding text.
//
// Keys must be unique within a Content. A key may contain '-', but location
// keys are decoded from the right, so the last two '-' separated fields are
// always taken as decorator and leaf indices.
func NewBlock(key string, typ BlockType, text string) *Block {
	if typ == "" {
		typ = Unstyled
	}
	chars := grapheme.Split(text)
	return &Block{
		key:   key,
		typ:   typ,
		chars: chars,
		meta:  make([]CharMeta, len(chars)),
	}
}

// NewStyledBlock is NewBlock with explicit per-cluster meta. meta is padded
// or truncated to the cluster count of text.
func NewStyledBlock(key string, typ BlockType, text string, meta []CharMeta) *Block {
	b := NewBlock(key, typ, text)
	copy(b.meta, meta)
	return b
}

func (b *Block) Key() string { return b.key }

func (b *Block) Type() BlockType { return b.typ }

func (b *Block) Depth() int { return b.depth }

// Len returns the number of grapheme clusters in the block.
func (b *Block) Len() int { return len(b.chars) }

func (b *Block) Text() string { return grapheme.Join(b.chars) }

// Char returns the cluster at offset i, or "" when out of range.
func (b *Block) Char(i int) string {
	if i < 0 || i >= len(b.chars) {
		return ""
	}
	return b.chars[i]
}

// Meta returns the CharMeta at offset i, or the zero value when out of range.
func (b *Block) Meta(i int) CharMeta {
	if i < 0 || i >= len(b.meta) {
		return CharMeta{}
	}
	return b.meta[i]
}

// InlineStyleAt returns the style of the character at offset.
func (b *Block) InlineStyleAt(offset int) Style { return b.Meta(offset).Style }

// EntityAt returns the entity key of the character at offset, or "".
func (b *Block) EntityAt(offset int) string { return b.Meta(offset).Entity }

// TextRange returns the text in [start, end), clamped to the block.
func (b *Block) TextRange(start, end int) string {
	start = clampInt(start, 0, len(b.chars))
	end = clampInt(end, start, len(b.chars))
	return grapheme.Join(b.chars[start:end])
}

func (b *Block) withType(typ BlockType) *Block {
	out := *b
	out.typ = typ
	return &out
}

func (b *Block) withKey(key string) *Block {
	out := *b
	out.key = key
	return &out
}

// splice replaces [start, end) with the clusters of text, each carrying meta.
func (b *Block) splice(start, end int, text string, meta CharMeta) *Block {
	start = clampInt(start, 0, len(b.chars))
	end = clampInt(end, start, len(b.chars))
	ins := grapheme.Split(text)

	chars := make([]string, 0, len(b.chars)-(end-start)+len(ins))
	chars = append(chars, b.chars[:start]...)
	chars = append(chars, ins...)
	chars = append(chars, b.chars[end:]...)

	metas := make([]CharMeta, 0, cap(chars))
	metas = append(metas, b.meta[:start]...)
	for range ins {
		metas = append(metas, meta)
	}
	metas = append(metas, b.meta[end:]...)

	out := *b
	out.chars = chars
	out.meta = metas
	return &out
}

// slice keeps only [start, end).
func (b *Block) slice(start, end int) *Block {
	start = clampInt(start, 0, len(b.chars))
	end = clampInt(end, start, len(b.chars))
	out := *b
	out.chars = append([]string(nil), b.chars[start:end]...)
	out.meta = append([]CharMeta(nil), b.meta[start:end]...)
	return &out
}

// concat appends the characters of o to b, keeping b's key and type.
func (b *Block) concat(o *Block) *Block {
	out := *b
	out.chars = append(append([]string(nil), b.chars...), o.chars...)
	out.meta = append(append([]CharMeta(nil), b.meta...), o.meta...)
	return &out
}

// mapMeta rewrites the meta of [start, end) with fn.
func (b *Block) mapMeta(start, end int, fn func(CharMeta) CharMeta) *Block {
	start = clampInt(start, 0, len(b.chars))
	end = clampInt(end, start, len(b.chars))
	out := *b
	out.meta = append([]CharMeta(nil), b.meta...)
	for i := start; i < end; i++ {
		out.meta[i] = fn(out.meta[i])
	}
	return &out
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
