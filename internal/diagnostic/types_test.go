package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{"message only", Diagnostic{Message: "m"}, "m"},
		{"with code", Diagnostic{Code: "c", Message: "m"}, "[c] m"},
		{"with key", Diagnostic{Key: "a.b", Code: "c", Message: "m"}, "a.b: [c] m"},
		{"with suggestions", Diagnostic{Key: "a", Message: "m", Suggestions: []string{"b", "c"}}, "a: m (did you mean b, c?)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "Severity(7)", Severity(7).String())
}

func TestDiagnosticsMergeAndErr(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo("i", "k", "info")
	b.AddWarning("w", "k", "warn")
	b.Add(Diagnostic{Severity: SeverityError, Code: "e", Key: "k", Message: "first"})
	b.Add(Diagnostic{Severity: SeverityError, Code: "e", Key: "j", Message: "second"})

	assert.False(t, a.HasErrors())
	assert.NoError(t, a.Err())

	a.Merge(b)
	require.True(t, a.HasErrors())

	all := a.All()
	require.Len(t, all, 4)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[2].Severity)
	assert.Equal(t, SeverityInfo, all[3].Severity)

	assert.EqualError(t, a.Err(), "k: [e] first\nj: [e] second")
}
