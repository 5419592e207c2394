package storage

import (
	"iter"
)

// Storage is the access abstraction a container is parameterized by.
type Storage interface {
	// Get returns the raw value stored under key.
	Get(key string) (any, bool)
	// Set stores value under key, replacing any previous value.
	Set(key string, value any)
	// Delete removes key. Deleting a missing key is a no-op.
	Delete(key string)
	// Len returns the number of entries.
	Len() int
	// Keys returns the keys in iteration order.
	Keys() []string
	// All iterates entries in iteration order.
	All() iter.Seq2[string, any]
	// Empty returns a new, empty storage of the same strategy.
	Empty() Storage
	// Clone returns a shallow copy of the same strategy.
	Clone() Storage
	// Raw returns the native form stored in parent levels:
	// *Object or map[string]any.
	Raw() any
}

// As returns raw as a Storage when it is an associative value.
func As(raw any) (Storage, bool) {
	switch v := raw.(type) {
	case *Object:
		if v == nil {
			return nil, false
		}

		return v, true
	case map[string]any:
		if v == nil {
			return nil, false
		}

		return GoMap(v), true
	case GoMap:
		if v == nil {
			return nil, false
		}

		return v, true
	case Storage:
		return v, v != nil
	default:
		return nil, false
	}
}

// IsMapping reports whether raw is an associative value.
func IsMapping(raw any) bool {
	_, ok := As(raw)
	return ok
}

// DeepCopy recursively duplicates raw. Storage keeps its strategy,
// sequences are copied elementwise and scalars are returned as is.
func DeepCopy(raw any) any {
	if s, ok := As(raw); ok {
		out := s.Empty()
		for k, v := range s.All() {
			out.Set(k, DeepCopy(v))
		}

		return out.Raw()
	}

	if seq, ok := raw.([]any); ok {
		if seq == nil {
			return seq
		}

		out := make([]any, len(seq))
		for i, v := range seq {
			out[i] = DeepCopy(v)
		}

		return out
	}

	return raw
}
