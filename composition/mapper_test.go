package composition

import (
	"errors"
	"testing"

	"github.com/iw2rmb/compose/document"
)

func TestResolveTarget(t *testing.T) {
	c := document.NewContent(
		document.NewBlock("a", document.Unstyled, "plain bold"),
		document.NewBlock("img", document.Atomic, " "),
	)
	c = document.ApplyInlineStyle(c, document.Range("a", 6, 10), document.Bold)
	c, link := c.WithEntity(document.Entity{Type: "LINK", Mutability: document.Mutable})
	c = document.ApplyEntity(c, document.Range("a", 6, 10), link)
	s := document.NewState(c, document.Options{})

	got, err := ResolveTarget("a-0-1", s)
	if err != nil {
		t.Fatalf("ResolveTarget: %v", err)
	}
	if got.BlockKey != "a" || got.Start != 6 || got.End != 10 {
		t.Fatalf("target=%+v, want a [6,10)", got)
	}
	if got.Style != document.Bold {
		t.Fatalf("style=%v, want %v", got.Style, document.Bold)
	}
	if got.EntityKey != link {
		t.Fatalf("entity=%q, want %q", got.EntityKey, link)
	}
	if want := document.Range("a", 6, 10); got.Range != want {
		t.Fatalf("range=%+v, want %+v", got.Range, want)
	}

	if _, err := ResolveTarget("img-0-0", s); !errors.Is(err, ErrSkip) {
		t.Fatalf("atomic block err=%v, want ErrSkip", err)
	}
	if _, err := ResolveTarget("nope", s); !errors.Is(err, document.ErrMalformedLocationKey) {
		t.Fatalf("malformed err=%v, want ErrMalformedLocationKey", err)
	}
	if _, err := ResolveTarget("zz-0-0", s); !errors.Is(err, ErrUnknownBlock) {
		t.Fatalf("unknown block err=%v, want ErrUnknownBlock", err)
	}
	if _, err := ResolveTarget("a-0-5", s); !errors.Is(err, ErrUnknownLeaf) {
		t.Fatalf("unknown leaf err=%v, want ErrUnknownLeaf", err)
	}
}

func TestResolveTarget_KeepsSelectionFocusFlag(t *testing.T) {
	s := document.NewState(document.NewContent(document.NewBlock("a", document.Unstyled, "xy")), document.Options{})
	sel := document.Collapsed("a", 1)
	sel.HasFocus = true
	s = s.WithSelection(sel)

	got, err := ResolveTarget("a-0-0", s)
	if err != nil {
		t.Fatalf("ResolveTarget: %v", err)
	}
	if !got.Range.HasFocus || got.Range.IsBackward {
		t.Fatalf("range=%+v, want focused forward range", got.Range)
	}
}
