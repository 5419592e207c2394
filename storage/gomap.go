package storage

import (
	"iter"
	"maps"
	"slices"
)

// GoMap adapts a plain map[string]any. The map is shared, not copied:
// writes through a GoMap are visible to every holder of the map.
type GoMap map[string]any

func (m GoMap) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m GoMap) Set(key string, value any) {
	m[key] = value
}

func (m GoMap) Delete(key string) {
	delete(m, key)
}

func (m GoMap) Len() int {
	return len(m)
}

// Keys returns the keys in sorted order.
func (m GoMap) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

func (m GoMap) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

func (m GoMap) Empty() Storage {
	return GoMap{}
}

func (m GoMap) Clone() Storage {
	if m == nil {
		return GoMap{}
	}

	return GoMap(maps.Clone(map[string]any(m)))
}

func (m GoMap) Raw() any {
	return map[string]any(m)
}
