package dot

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Value is anything a container read can return: *Container, Null,
// Scalar or List.
type Value interface {
	// Kind tells which variant this is.
	Kind() Kind
	// Get reads a path-aware key. Non-containers answer with Nil.
	Get(key string) Value
	// Attr reads a single segment without splitting.
	Attr(key string) Value
	// IsNull reports whether this is the absence of a value.
	IsNull() bool
	// Raw returns the unwrapped value.
	Raw() any
	// Equal compares structurally against a wrapped or raw value.
	Equal(other any) bool
	String() string
}

var (
	_ Value = (*Container)(nil)
	_ Value = Null{}
	_ Value = Scalar{}
	_ Value = List(nil)
)

// Scalar holds a non-container value.
type Scalar struct {
	v any
}

func (s Scalar) Kind() Kind { return KindScalar }
func (s Scalar) Get(string) Value { return Nil }
func (s Scalar) Attr(string) Value { return Nil }
func (s Scalar) IsNull() bool { return false }
func (s Scalar) Raw() any { return s.v }
func (s Scalar) Equal(other any) bool { return Equal(s, other) }
func (s Scalar) String() string { return fmt.Sprint(s.v) }
func (s Scalar) MarshalJSON() ([]byte, error) { return json.Marshal(s.v) }

// AsString returns the value if it is a string.
func (s Scalar) AsString() (string, bool) {
	v, ok := s.v.(string)
	return v, ok
}

// AsBool returns the value if it is a bool.
func (s Scalar) AsBool() (bool, bool) {
	v, ok := s.v.(bool)
	return v, ok
}

// AsFloat returns any numeric value as float64.
func (s Scalar) AsFloat() (float64, bool) {
	f, ok := toBig(s.v)
	if !ok {
		return 0, false
	}

	v, _ := f.Float64()

	return v, true
}

// AsInt returns integral numeric values that fit in an int64.
// Floats with a fractional part are rejected.
func (s Scalar) AsInt() (int64, bool) {
	f, ok := toBig(s.v)
	if !ok || !f.IsInt() {
		return 0, false
	}

	v, acc := f.Int64()

	return v, acc == big.Exact
}

// List is a sequence with every element wrapped.
type List []Value

func (l List) Kind() Kind { return KindList }
func (l List) Get(string) Value { return Nil }
func (l List) Attr(string) Value { return Nil }
func (l List) IsNull() bool { return false }
func (l List) Equal(other any) bool { return Equal(l, other) }

// Len returns the number of elements.
func (l List) Len() int { return len(l) }

// At returns element i, or Nil when i is out of range.
func (l List) At(i int) Value {
	if i < 0 || i >= len(l) {
		return Nil
	}

	return l[i]
}

func (l List) Raw() any {
	return Unwrap(l)
}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
