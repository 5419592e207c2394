// Package ctybridge converts between raw storage values and cty.Value, the
// dynamic value model used by HCL.
package ctybridge

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"dotmap/storage"
)

// FromValue recursively converts a cty.Value to raw storage values.
// Objects and maps become *storage.Object in lexical attribute order (cty
// does not keep source order), lists, tuples
// and sets become []any, numbers int64 when integral and float64 otherwise.
// Null and unknown values become nil, and nil attributes are dropped.
func FromValue(v cty.Value) (any, error) {
	if v.IsMarked() {
		v, _ = v.Unmark()
	}

	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i, nil
			}
		}

		f, _ := bf.Float64()

		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		seq := make([]any, 0, v.LengthInt())

		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()

			native, err := FromValue(elem)
			if err != nil {
				return nil, err
			}

			seq = append(seq, native)
		}

		return seq, nil

	case ty.IsObjectType() || ty.IsMapType():
		obj := storage.NewObject()

		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			keyStr := key.AsString()

			native, err := FromValue(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", keyStr, err)
			}

			if native != nil {
				obj.Set(keyStr, native)
			}
		}

		return obj, nil

	default:
		return nil, fmt.Errorf("unsupported cty type: %s", ty.FriendlyName())
	}
}

// ToValue converts raw storage values into a cty.Value. Mappings become
// objects and sequences tuples, so mixed element types are kept.
func ToValue(raw any) (cty.Value, error) {
	if raw == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}

	if s, ok := storage.As(raw); ok {
		if s.Len() == 0 {
			return cty.EmptyObjectVal, nil
		}

		attrs := make(map[string]cty.Value, s.Len())

		for k, e := range s.All() {
			v, err := ToValue(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in attribute '%s': %w", k, err)
			}

			attrs[k] = v
		}

		return cty.ObjectVal(attrs), nil
	}

	if seq, ok := raw.([]any); ok {
		if len(seq) == 0 {
			return cty.EmptyTupleVal, nil
		}

		elems := make([]cty.Value, len(seq))

		for i, e := range seq {
			v, err := ToValue(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in element %d: %w", i, err)
			}

			elems[i] = v
		}

		return cty.TupleVal(elems), nil
	}

	ty, err := gocty.ImpliedType(raw)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type for %T: %w", raw, err)
	}

	return gocty.ToCtyValue(raw, ty)
}
