package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	paths := []string{
		"server.host",
		"server.port",
		"server.http_port",
		"database.user",
		"database.password",
	}

	t.Run("closest first", func(t *testing.T) {
		got := Suggest("server.httpPort", paths, DefaultThreshold, 0)
		assert.NotEmpty(t, got)
		assert.Equal(t, "server.http_port", got[0].Path)
		assert.InDelta(t, 1.0, got[0].Score, 0.0001)
	})

	t.Run("limit", func(t *testing.T) {
		got := Suggest("server.prot", paths, 0.5, 1)
		assert.Equal(t, []string{"server.port"}, Paths(got))
	})

	t.Run("threshold filters unrelated paths", func(t *testing.T) {
		got := Suggest("metrics", paths, DefaultThreshold, 0)
		assert.Empty(t, got)
	})

	t.Run("exact path is not suggested", func(t *testing.T) {
		got := Suggest("server.host", paths, 0, 0)
		assert.NotContains(t, Paths(got), "server.host")
		assert.Len(t, got, len(paths)-1)
	})

	t.Run("ties break by path", func(t *testing.T) {
		got := Suggest("ab", []string{"ax", "aa"}, 0, 0)
		assert.Equal(t, []string{"aa", "ax"}, Paths(got))
	})
}
