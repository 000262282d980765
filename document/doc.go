// Package document implements the immutable, versioned block model the
// composition engine reconciles against.
//
// A Content is an ordered list of blocks plus an entity map. Every mutation
// derives a new Content; a State wraps the current Content together with the
// selection, the decorator, and a bounded linear undo/redo history.
//
// Offsets are 0-based and count grapheme clusters. Ranges are half-open:
// [Start, End).
package document
