package dot

import (
	"dotmap/storage"
)

// Wrap presents a raw value. Mappings become a *Container sharing the
// mapping, []any becomes a List, nil becomes Nil and other values become a
// Scalar. Values that are already wrapped are returned unchanged.
func Wrap(x any, opts ...Option) Value {
	return wrapWith(x, newConfig(opts))
}

func wrapWith(x any, cfg *config) Value {
	switch v := x.(type) {
	case nil:
		return Nil
	case *Container:
		if v == nil {
			return Nil
		}

		return v
	case Null:
		return v
	case Scalar:
		return v
	case List:
		return v
	case []any:
		out := make(List, len(v))
		for i, e := range v {
			out[i] = wrapWith(e, cfg)
		}

		return out
	}

	if s, ok := storage.As(x); ok {
		return &Container{store: s, cfg: cfg}
	}

	if isNilMapping(x) {
		return Nil
	}

	return Scalar{v: x}
}

// Unwrap strips wrapping down to raw data. It recurses into sequences and
// is idempotent.
func Unwrap(x any) any {
	switch v := x.(type) {
	case nil:
		return nil
	case *Container:
		if v == nil {
			return nil
		}

		return v.backing().Raw()
	case Null:
		return nil
	case Scalar:
		return v.v
	case List:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = Unwrap(e)
		}

		return out
	case []any:
		return unwrapSeq(v)
	case storage.GoMap:
		if v == nil {
			return nil
		}

		return map[string]any(v)
	}

	if isNilMapping(x) {
		return nil
	}

	if s, ok := x.(storage.Storage); ok {
		return s.Raw()
	}

	return x
}

// unwrapSeq copies seq only when an element needs unwrapping, so plain
// sequences keep their identity.
func unwrapSeq(seq []any) []any {
	for i, e := range seq {
		if !isWrapped(e) {
			continue
		}

		out := make([]any, len(seq))
		copy(out, seq[:i])

		for j := i; j < len(seq); j++ {
			out[j] = Unwrap(seq[j])
		}

		return out
	}

	return seq
}

func isWrapped(x any) bool {
	switch v := x.(type) {
	case *Container, Null, Scalar, List, storage.GoMap:
		return true
	case []any:
		for _, e := range v {
			if isWrapped(e) {
				return true
			}
		}
	}

	return false
}

func isNilMapping(x any) bool {
	switch v := x.(type) {
	case *storage.Object:
		return v == nil
	case map[string]any:
		return v == nil
	case storage.GoMap:
		return v == nil
	}

	return false
}
