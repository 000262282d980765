// Package textdiff recovers what changed between two text snapshots of the
// same block.
//
// These are cheap heuristics, not edit scripts: they are only meaningful when
// the two snapshots differ by one small contiguous insertion or removal, which
// is what a single backspace or a single committed composition produces.
package textdiff

import (
	"strings"

	"github.com/iw2rmb/compose/internal/grapheme"
)

// Diff removes every non-overlapping occurrence of other from base and
// concatenates what is left.
//
// base is returned unchanged when other does not occur in it (or is empty),
// and Diff returns "" when base is only repeated copies of other.
func Diff(base, other string) string {
	if other == "" || !strings.Contains(base, other) {
		return base
	}
	return strings.Join(strings.Split(base, other), "")
}

// Removed returns the span that was deleted from before to produce after.
//
// When after occurs literally inside before the result is Diff(before, after).
// Otherwise the common grapheme prefix and suffix are trimmed and the middle
// of before is returned, so an interior deletion ("hi @bob" to "hi bob")
// still yields the removed "@".
func Removed(before, after string) string {
	if after != "" && strings.Contains(before, after) {
		return Diff(before, after)
	}
	b := grapheme.Split(before)
	a := grapheme.Split(after)
	p := grapheme.CommonPrefix(b, a)
	s := grapheme.CommonSuffix(b, a, p)
	return grapheme.Join(b[p : len(b)-s])
}
