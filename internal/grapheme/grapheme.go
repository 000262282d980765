// Package grapheme holds the grapheme-cluster arithmetic shared by the
// document model and the diff helpers. Every offset in the module counts
// clusters, never bytes or runes.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the clusters of text in [start, end), clamped to bounds.
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}
	from, to := -1, len(text)
	idx := 0
	state := -1
	rest := text
	pos := 0
	for len(rest) > 0 {
		if idx == start {
			from = pos
		}
		if idx == end {
			to = pos
			break
		}
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		idx++
	}
	if from < 0 {
		return ""
	}
	return text[from:to]
}

// Join concatenates clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// CommonPrefix returns the number of leading clusters a and b share.
func CommonPrefix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// CommonSuffix returns the number of trailing clusters a and b share,
// never reaching into the first skip clusters of either slice.
func CommonSuffix(a, b []string, skip int) int {
	n := 0
	for n < len(a)-skip && n < len(b)-skip && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
