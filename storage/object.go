package storage

import (
	"iter"
	"slices"
)

// Pair is a single key/value entry of an Object.
type Pair struct {
	Key   string
	Value any
}

// Object is an insertion-order-preserving map from string keys to raw values.
// Re-setting an existing key keeps its original position.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{values: map[string]any{}}
}

// ObjectWith creates an Object populated with pairs, in order.
func ObjectWith(pairs ...Pair) *Object {
	o := NewObject()
	for _, p := range pairs {
		o.Set(p.Key, p.Value)
	}

	return o
}

// ObjectFrom copies m into a new Object. Keys are inserted in sorted order;
// nested maps are converted recursively.
func ObjectFrom(m map[string]any) *Object {
	o := NewObject()

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		o.Set(k, fromNative(m[k]))
	}

	return o
}

func fromNative(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return ObjectFrom(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = fromNative(e)
		}

		return out
	default:
		return v
	}
}

func (o *Object) init() {
	if o.values == nil {
		o.values = map[string]any{}
	}
}

func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *Object) Set(key string, value any) {
	o.init()

	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = value
}

func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}

	delete(o.values, key)

	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

func (o *Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range o.Keys() {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

func (o *Object) Empty() Storage {
	return NewObject()
}

func (o *Object) Clone() Storage {
	out := &Object{
		keys:   slices.Clone(o.keys),
		values: make(map[string]any, len(o.values)),
	}
	for k, v := range o.values {
		out.values[k] = v
	}

	return out
}

func (o *Object) Raw() any {
	return o
}

// Pairs returns the entries in order.
func (o *Object) Pairs() []Pair {
	out := make([]Pair, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, Pair{Key: k, Value: o.values[k]})
	}

	return out
}

// ToMap converts the Object into nested native Go maps, dropping order.
func (o *Object) ToMap() map[string]any {
	out := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		out[k] = toNative(o.values[k])
	}

	return out
}

func toNative(v any) any {
	switch t := v.(type) {
	case *Object:
		return t.ToMap()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = toNative(e)
		}

		return out
	default:
		return v
	}
}
