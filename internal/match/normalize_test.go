package match

import (
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"httpPort", "httpport"},
		{"http_port", "httpport"},
		{"HTTP-Port", "httpport"},
		{"http port", "httpport"},

		// Delimiters are kept
		{"server.http_port", "server.httpport"},
		{"a/b", "a/b"},

		// Edge cases
		{"", ""},
		{"_", ""},
		{"Ä", "ä"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeKey(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
