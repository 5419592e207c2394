// Package storage provides the raw associative containers that back a
// dot.Container.
//
// Raw storage holds only plain data: scalars, nested storage and []any
// sequences. It never holds wrapped values; wrapping is a presentation
// concern of package dot.
//
// # Strategies
//
// Two strategies implement the Storage interface:
//
//   - *Object keeps keys in insertion order. It is the default for new
//     containers and for decoded documents.
//   - GoMap adapts a caller-owned map[string]any without copying it.
//     Go maps are unordered, so GoMap iterates keys in sorted order.
//
// Nested levels created by auto-vivification use the strategy of the level
// they are created in (see Storage.Empty).
//
// # Encoding
//
// *Object implements json.Marshaler/json.Unmarshaler and the yaml.v3
// Marshaler/Unmarshaler interfaces, preserving key order in both directions.
package storage
