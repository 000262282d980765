package composition

// Observer watches the editable surface during a composition and buffers,
// per location key, the final text content seen at that location.
//
// StopAndFlushMutations stops watching and hands the buffer to the caller.
type Observer interface {
	Start()
	StopAndFlushMutations() *Mutations
}

// Mutations is an insertion-ordered map from encoded location key to the
// composed text observed there.
type Mutations struct {
	keys []string
	text map[string]string
}

// NewMutations returns an empty buffer.
func NewMutations() *Mutations {
	return &Mutations{text: map[string]string{}}
}

// Set records text for key. A key seen again keeps its original position
// and takes the newer text.
func (m *Mutations) Set(key, text string) {
	if m.text == nil {
		m.text = map[string]string{}
	}
	if _, ok := m.text[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.text[key] = text
}

// Len is safe on a nil buffer.
func (m *Mutations) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Text returns the text recorded for key.
func (m *Mutations) Text(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	t, ok := m.text[key]
	return t, ok
}

// Keys returns the keys in insertion order.
func (m *Mutations) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Each calls fn for every entry in insertion order.
func (m *Mutations) Each(fn func(key, text string)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		fn(k, m.text[k])
	}
}
