// Package keypath splits composite keys like "a.b.c" into segments.
//
// Splitting is strict: no trimming, no coalescing of repeated delimiters and
// no validation of individual segments. "a..b" yields ["a", "", "b"].
package keypath

import (
	"strings"
)

// DefaultDelimiter separates segments when no other delimiter is configured.
const DefaultDelimiter = "."

// Splitter splits and joins keys on a single delimiter.
// The zero value uses DefaultDelimiter.
type Splitter struct {
	Delimiter string
}

// Delim returns the effective delimiter.
func (s Splitter) Delim() string {
	if s.Delimiter == "" {
		return DefaultDelimiter
	}

	return s.Delimiter
}

// Contains reports whether key holds more than one segment.
func (s Splitter) Contains(key string) bool {
	return strings.Contains(key, s.Delim())
}

// Split returns the ordered segments of key.
func (s Splitter) Split(key string) []string {
	delim := s.Delim()
	if !strings.Contains(key, delim) {
		return []string{key}
	}

	segments := make([]string, 0, strings.Count(key, delim)+1)
	for part := range strings.SplitSeq(key, delim) {
		segments = append(segments, part)
	}

	return segments
}

// Join concatenates segments with the delimiter.
func (s Splitter) Join(segments ...string) string {
	return strings.Join(segments, s.Delim())
}

// IsDegenerate reports whether key is the bare delimiter, which addresses
// the container itself.
func (s Splitter) IsDegenerate(key string) bool {
	return key == s.Delim()
}

// Split splits key on DefaultDelimiter.
func Split(key string) []string {
	return Splitter{}.Split(key)
}

// Join joins segments with DefaultDelimiter.
func Join(segments ...string) string {
	return Splitter{}.Join(segments...)
}
