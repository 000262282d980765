package document

import "testing"

func TestEntityKeyForSelection(t *testing.T) {
	c := NewContent(NewBlock("a", Unstyled, "go @ann now"))
	c, link := c.WithEntity(Entity{Type: "LINK", Mutability: Mutable})
	c, mention := c.WithEntity(Entity{Type: "MENTION", Mutability: Immutable})
	c = ApplyEntity(c, Range("a", 0, 2), link)
	c = ApplyEntity(c, Range("a", 3, 7), mention)

	cases := []struct {
		name string
		sel  Selection
		want string
	}{
		{name: "caret inside mutable", sel: Collapsed("a", 1), want: link},
		{name: "caret at entity edge", sel: Collapsed("a", 2), want: ""},
		{name: "caret at block start", sel: Collapsed("a", 0), want: ""},
		{name: "caret inside immutable", sel: Collapsed("a", 5), want: ""},
		{name: "range from mutable", sel: Range("a", 0, 1), want: link},
		{name: "range from immutable", sel: Range("a", 3, 5), want: ""},
		{name: "backward range from mutable", sel: Selection{AnchorKey: "a", AnchorOffset: 2, FocusKey: "a", FocusOffset: 0, IsBackward: true}, want: link},
		{name: "unknown block", sel: Collapsed("zz", 1), want: ""},
	}
	for _, tc := range cases {
		if got := EntityKeyForSelection(c, tc.sel); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
