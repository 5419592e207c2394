package match

import (
	"strings"
	"unicode"
)

// NormalizeKey lowercases s and strips the separators people mix up in keys
// ("_", "-" and spaces), so "http_port", "httpPort" and "HTTP-Port" compare equal.
func NormalizeKey(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
