package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	return At(s, 0)
}

// At returns the i-th element of the slice and true, or the zero value and false if out of range.
func At[S ~[]E, E any](s S, i int) (E, bool) {
	if i < 0 || i >= len(s) {
		var zero E
		return zero, false
	}

	return s[i], true
}

// Unpack2 returns the first two elements, zero valued when missing.
func Unpack2[S ~[]E, E any](s S) (first E, second E) {
	first, _ = At(s, 0)
	second, _ = At(s, 1)

	return first, second
}
