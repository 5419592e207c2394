// Package codec reads and writes documents as raw storage values.
//
// Supported formats:
//   - json: key order preserved, integral numbers decode as int64
//   - yaml: key order preserved (yaml.v3 node tree)
//   - hcl: top-level attributes only, ordered by source position on decode
//   - msgpack: key order preserved, maps decoded entry by entry
//
// Decoded mappings are *storage.Object values.
package codec
