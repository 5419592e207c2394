package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the minimum similarity for a path to be suggested.
const DefaultThreshold = 0.6

// Candidate is a known path and its similarity to the missed one.
type Candidate struct {
	Path  string
	Score float64
}

// Suggest ranks paths by similarity to missing, best first, keeping those
// scoring at least threshold. At most limit candidates are returned; a
// non-positive limit keeps all of them.
func Suggest(missing string, paths []string, threshold float64, limit int) []Candidate {
	norm := NormalizeKey(missing)

	var out []Candidate

	for _, p := range paths {
		if p == missing {
			continue
		}

		score := Similarity(norm, NormalizeKey(p))
		if score >= threshold {
			out = append(out, Candidate{Path: p, Score: score})
		}
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Path, b.Path)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// Paths returns only the paths of candidates.
func Paths(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Path
	}

	return out
}
