package dot_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotmap/dot"
)

func TestNullWriteThrough(t *testing.T) {
	c := dot.New()
	c.MustSet("a.x", 1)

	miss, ok := c.Get("a.b.c").(dot.Null)
	require.True(t, ok)
	assert.True(t, miss.Writable())
	assert.Equal(t, "b.c", miss.Path())
	assert.Equal(t, []string{"x"}, c.Get("a").(*dot.Container).Keys(), "nothing created by the read")

	got, err := miss.Set("d", 5)
	require.NoError(t, err)

	assert.Equal(t, 5, c.Get("a.b.c.d").Raw())
	assert.True(t, got.Equal(map[string]any{"d": 5}))
	assert.Equal(t, 1, c.Get("a.x").Raw())

	// a second write through the same null reuses what was created
	_, err = miss.Set("e.f", 6)
	require.NoError(t, err)
	assert.True(t, c.Get("a.b.c").Equal(map[string]any{"d": 5, "e": map[string]any{"f": 6}}))
}

func TestNullAssignItself(t *testing.T) {
	c := dot.New()

	miss := c.Get("p.q").(dot.Null)

	got, err := miss.Set(".", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Raw())
	assert.Equal(t, 7, c.Get("p.q").Raw())
}

func TestNullAbsentValueWritesNothing(t *testing.T) {
	c := dot.New()

	got, err := c.Get("a.b").(dot.Null).Set("c", nil)
	require.NoError(t, err)
	assert.True(t, got.IsNull())
	assert.Equal(t, 0, c.Len())
}

func TestNullEmptyKey(t *testing.T) {
	c := dot.New()

	_, err := c.Get("a").(dot.Null).Set("", 1)
	assert.ErrorIs(t, err, dot.ErrEmptyKey)
	assert.Equal(t, 0, c.Len())
}

func TestOwnerlessNullDiscardsWrites(t *testing.T) {
	got, err := dot.Nil.Set("x", 1)
	require.NoError(t, err)
	assert.True(t, got.IsNull())

	// reads off a null are inert, even when the parent could write
	c := dot.New()
	chained := c.Get("a").Get("b").(dot.Null)
	assert.False(t, chained.Writable())

	_, err = chained.Set("x", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestStoredNilReadsAsWritableNull(t *testing.T) {
	m := map[string]any{"a": nil}
	c := dot.FromMap(m)

	v := c.Get("a")
	require.True(t, v.IsNull())

	_, err := v.(dot.Null).Set("b", 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"b": 1}, m["a"])
}

func TestNullProperties(t *testing.T) {
	n := dot.New().Get("missing").(dot.Null)

	assert.Equal(t, dot.KindNull, n.Kind())
	assert.False(t, n.Bool())
	assert.Equal(t, 0, n.Len())
	assert.Nil(t, n.Raw())
	assert.Equal(t, "null", n.String())

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestNullEquality(t *testing.T) {
	tests := []struct {
		name     string
		other    any
		expected bool
	}{
		{"nil", nil, true},
		{"Nil", dot.Nil, true},
		{"owner null", dot.New().Get("x"), true},
		{"empty container", dot.New(), true},
		{"empty map", map[string]any{}, true},
		{"non empty container", dot.New().MustSet("a", 1), false},
		{"zero", 0, false},
		{"empty string", "", false},
		{"false", false, false},
		{"empty list", []any{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dot.Nil.Equal(tt.other))
			assert.Equal(t, tt.expected, dot.Equal(tt.other, dot.Nil), "symmetric")
		})
	}
}
