package aliasmap

import (
	"fmt"
	"iter"
)

// The sequences below read the map while they run, so they observe changes
// made between two steps. Mutating the map during iteration is not supported:
// entries may be skipped or visited twice.

// Keys returns the primary names in insertion order.
func (m *Map[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < len(m.order); i++ {
			if !yield(m.order[i]) {
				return
			}
		}
	}
}

// Values returns the stored values in primary name insertion order. Each value
// is looked up when it is reached, not when Values is called.
func (m *Map[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < len(m.order); i++ {
			if !yield(m.entries[m.order[i]].value) {
				return
			}
		}
	}
}

// All returns (primary name, value) pairs in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := 0; i < len(m.order); i++ {
			name := m.order[i]
			if !yield(name, m.entries[name].value) {
				return
			}
		}
	}
}

// ForEach calls fn for every entry in insertion order with a zero-based index.
func (m *Map[V]) ForEach(fn func(value V, index int, m *Map[V])) error {
	if fn == nil {
		return fmt.Errorf("%w: iterator function must not be nil", ErrInvalidArgument)
	}
	for i := 0; i < len(m.order); i++ {
		fn(m.entries[m.order[i]].value, i, m)
	}
	return nil
}
