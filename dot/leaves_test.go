package dot_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotmap/dot"
	"dotmap/storage"
)

func leafPairs(leaves []dot.Leaf) [][2]any {
	out := make([][2]any, len(leaves))
	for i, l := range leaves {
		out[i] = [2]any{l.Path, l.Value.Raw()}
	}

	return out
}

func TestLeaves(t *testing.T) {
	c := dot.Wrap(map[string]any{"a": map[string]any{"b": 1, "c": 2}}).(*dot.Container)

	assert.Equal(t, [][2]any{{"a.b", 1}, {"a.c", 2}}, leafPairs(c.Leaves()))
}

func TestLeavesFollowInsertionOrder(t *testing.T) {
	c := dot.New()
	c.MustSet("z.y", 1)
	c.MustSet("a", []any{1, 2})
	c.MustSet("z.b", "s")
	c.MustSet("empty", map[string]any{})
	c.SetAttr("lit.eral", true)

	leaves := c.Leaves()
	t.Log(spew.Sdump(leafPairs(leaves)))

	assert.Equal(t, [][2]any{
		{"z.y", 1},
		{"z.b", "s"},
		{"a", []any{1, 2}},
		{"lit.eral", true},
	}, leafPairs(leaves))
}

func TestLeavesPrefixAndNil(t *testing.T) {
	obj := storage.ObjectWith(
		storage.Pair{Key: "x", Value: nil},
		storage.Pair{Key: "y", Value: storage.ObjectWith(storage.Pair{Key: "z", Value: 0})},
	)

	leaves := dot.Wrap(obj).(*dot.Container).Leaves("root.")
	require.Len(t, leaves, 1)
	assert.Equal(t, "root.y.z", leaves[0].Path)
	assert.Equal(t, dot.KindScalar, leaves[0].Value.Kind())
}

func TestLeavesEmpty(t *testing.T) {
	assert.Empty(t, dot.New().Leaves())
}
