package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotmap/dot"
	"dotmap/internal/diagnostic"
	"dotmap/internal/match"
)

func TestRecorderCounts(t *testing.T) {
	r := diagnostic.NewRecorder()
	c := dot.New(dot.WithRecorder(r))

	c.MustSet("server.port", 80)
	c.Get("server.port")
	c.Get("server.prot")
	c.Get("server").Get("prot")
	c.Get("server.prot")
	c.Delete("x")

	assert.Equal(t, 1, r.Count(dot.OpSet, "server.port"))
	assert.Equal(t, 1, r.Count(dot.OpGet, "server.port"))
	assert.Equal(t, 2, r.Total("server.port"))
	assert.Equal(t, 2, r.Count(dot.OpGet, "server.prot"))
	assert.Equal(t, 1, r.Count(dot.OpGet, "server"), "nested containers share the recorder")
	assert.Equal(t, 0, r.Total("unknown"))

	assert.Equal(t, []string{"server.port", "server.prot", "server", "prot", "x"}, r.Keys())
	assert.Equal(t, []string{"prot", "server.prot"}, r.Misses())
}

func TestRecorderDiagnostics(t *testing.T) {
	r := diagnostic.NewRecorder()
	c := dot.New(dot.WithRecorder(r))

	c.MustSet("server.port", 80)
	c.Get("server.prot")

	r.Suggest = func(key string) []string {
		paths := make([]string, 0)
		for _, l := range c.Leaves() {
			paths = append(paths, l.Path)
		}

		return match.Paths(match.Suggest(key, paths, match.DefaultThreshold, 3))
	}

	d := r.Diagnostics()
	require.Len(t, d.Infos, 2)
	require.Len(t, d.Warnings, 1)
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Err())

	assert.Equal(t, "server.port", d.Infos[0].Key)
	assert.Equal(t, diagnostic.CodeRequested, d.Infos[0].Code)
	assert.Equal(t, "[Set=1]", d.Infos[0].Message)

	w := d.Warnings[0]
	assert.Equal(t, diagnostic.CodeMissed, w.Code)
	assert.Equal(t, "server.prot", w.Key)
	assert.Equal(t, []string{"server.port"}, w.Suggestions)
	assert.Contains(t, w.String(), "did you mean server.port?")

	assert.Equal(t,
		"server.prot: [missed] read 1 time(s) without a value (did you mean server.port?)\n"+
			"server.port: [requested] [Set=1]\n"+
			"server.prot: [requested] [Get=1]",
		r.String())
}

func TestRecorderZeroValueAndReset(t *testing.T) {
	var r diagnostic.Recorder

	r.Record(dot.OpAttr, "a", false)
	assert.Equal(t, 1, r.Count(dot.OpAttr, "a"))

	r.Reset()
	assert.Empty(t, r.Keys())
	assert.Empty(t, r.Misses())
	d := r.Diagnostics()
	assert.Empty(t, d.All())
}
