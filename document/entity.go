package document

// EntityKeyForSelection returns the entity that text typed over sel should
// continue, or "".
//
// A caret continues an entity only when the characters on both sides of it
// carry the same key. A range continues the entity at its start unless the
// start sits at the end of its block. Only mutable entities ever continue.
func EntityKeyForSelection(c *Content, sel Selection) string {
	var key string
	if sel.IsCollapsed() {
		b := c.BlockForKey(sel.AnchorKey)
		off := sel.AnchorOffset
		if b == nil || off <= 0 {
			return ""
		}
		key = b.EntityAt(off - 1)
		if key != b.EntityAt(off) {
			return ""
		}
	} else {
		b := c.BlockForKey(sel.StartKey())
		if b == nil || sel.StartOffset() >= b.Len() {
			return ""
		}
		key = b.EntityAt(sel.StartOffset())
	}
	return mutableOnly(c, key)
}

func mutableOnly(c *Content, key string) string {
	if key == "" {
		return ""
	}
	e, ok := c.Entity(key)
	if !ok || e.Mutability != Mutable {
		return ""
	}
	return key
}
