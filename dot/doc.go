// Package dot provides path-aware access to nested associative data.
//
// A Container is a thin facade over raw storage (see package storage). It
// reads and writes nested fields with a single delimited key:
//
//	c := dot.New()
//	c.MustSet("server.http.port", 8080)
//	port := c.Get("server.http.port") // Scalar 8080
//	c.Get("server.tls.cert").IsNull() // true, and nothing was created
//
// # Absence
//
// A read that misses never fails. It returns a Null, which answers every
// further read with another Null. A Null produced by a container remembers
// the deepest existing level and the missing segments below it, so a write
// through it creates exactly the missing levels:
//
//	miss := c.Get("server.tls")
//	miss.(dot.Null).Set("cert", "/etc/cert.pem") // server.tls.cert now exists
//
// Assigning nil or any Null to a key deletes the key.
//
// # Wrapping
//
// Every value read out of a container passes through Wrap and every value
// written in passes through Unwrap, so raw storage only ever holds plain
// data. Wrap and Unwrap are idempotent and Wrap(Unwrap(v)) equals v.
//
// # Errors
//
// Only three conditions fail: a non-string key given to Lookup
// (ErrInvalidKeyKind), an empty key given to Set (ErrEmptyKey) and Clear or
// other unsupported operations (ErrUnsupported).
package dot
