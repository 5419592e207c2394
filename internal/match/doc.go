// Package match ranks known key paths against a path that missed, to
// produce "did you mean" hints.
//
// Key functions:
//   - NormalizeKey: folds case and separators before comparing
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate paths by normalized similarity
package match
