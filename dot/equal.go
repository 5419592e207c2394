package dot

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"math/big"
	"reflect"

	"dotmap/storage"
)

// Equal compares two values structurally, looking through any wrapping.
// Mappings compare key by key regardless of order and strategy, sequences
// elementwise and numbers by value across Go numeric types. At the top
// level an empty mapping equals the absence value. A key holding nil is the
// same as a missing key.
func Equal(a, b any) bool {
	ra, rb := Unwrap(a), Unwrap(b)

	if ra == nil || rb == nil {
		other := ra
		if other == nil {
			other = rb
		}

		if other == nil {
			return true
		}

		s, ok := storage.As(other)

		return ok && isBlank(s)
	}

	return rawEqual(ra, rb)
}

func rawEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	sa, aok := storage.As(a)
	sb, bok := storage.As(b)

	if aok || bok {
		if !aok || !bok {
			return false
		}

		// a key holding nil reads the same as a missing key
		for k, va := range sa.All() {
			vb, _ := sb.Get(k)
			if !rawEqual(va, vb) {
				return false
			}
		}

		for k, vb := range sb.All() {
			if _, ok := sa.Get(k); !ok && vb != nil {
				return false
			}
		}

		return true
	}

	qa, aok := a.([]any)
	qb, bok := b.([]any)

	if aok || bok {
		if !aok || !bok || len(qa) != len(qb) {
			return false
		}

		for i := range qa {
			if !rawEqual(qa[i], qb[i]) {
				return false
			}
		}

		return true
	}

	if fa, ok := toBig(a); ok {
		fb, ok := toBig(b)
		return ok && fa.Cmp(fb) == 0
	}

	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return reflect.DeepEqual(a, b)
	}

	return a == b
}

// isBlank reports whether s holds no value other than nil.
func isBlank(s storage.Storage) bool {
	for _, v := range s.All() {
		if v != nil {
			return false
		}
	}

	return true
}

// toBig converts Go numeric values exactly. NaN is not a number here.
func toBig(v any) (*big.Float, bool) {
	f := new(big.Float)

	switch n := v.(type) {
	case int:
		f.SetInt64(int64(n))
	case int8:
		f.SetInt64(int64(n))
	case int16:
		f.SetInt64(int64(n))
	case int32:
		f.SetInt64(int64(n))
	case int64:
		f.SetInt64(n)
	case uint:
		f.SetUint64(uint64(n))
	case uint8:
		f.SetUint64(uint64(n))
	case uint16:
		f.SetUint64(uint64(n))
	case uint32:
		f.SetUint64(uint64(n))
	case uint64:
		f.SetUint64(n)
	case float32:
		if math.IsNaN(float64(n)) {
			return nil, false
		}

		f.SetFloat64(float64(n))
	case float64:
		if math.IsNaN(n) {
			return nil, false
		}

		f.SetFloat64(n)
	default:
		return nil, false
	}

	return f, true
}

const (
	tagMap byte = iota + 1
	tagSeq
	tagInt
	tagFloat
	tagString
	tagBool
	tagOther
)

// Hash returns a structural hash consistent with Equal: mapping entries are
// combined order-insensitively, nil entries are skipped, numbers are
// normalised, and an empty mapping hashes like the absence value.
func Hash(x any) uint64 {
	return hashRaw(Unwrap(x))
}

func hashRaw(v any) uint64 {
	if v == nil {
		return hashBytes(tagMap)
	}

	if s, ok := storage.As(v); ok {
		sum := hashBytes(tagMap)
		for k, e := range s.All() {
			if e == nil {
				continue
			}

			// addition keeps the result independent of iteration order
			sum += hashPair(hashString(k), hashRaw(e))
		}

		return sum
	}

	if seq, ok := v.([]any); ok {
		h := fnv.New64a()
		h.Write([]byte{tagSeq})

		for _, e := range seq {
			_ = binary.Write(h, binary.LittleEndian, hashRaw(e))
		}

		return h.Sum64()
	}

	if f, ok := toBig(v); ok {
		if f.IsInt() {
			if i, acc := f.Int64(); acc == big.Exact {
				return hashBytes(tagInt, binary.LittleEndian.AppendUint64(nil, uint64(i))...)
			}
		}

		fl, _ := f.Float64()

		return hashBytes(tagFloat, binary.LittleEndian.AppendUint64(nil, math.Float64bits(fl))...)
	}

	switch t := v.(type) {
	case string:
		return hashString(t)
	case bool:
		if t {
			return hashBytes(tagBool, 1)
		}

		return hashBytes(tagBool, 0)
	default:
		return hashBytes(tagOther, []byte(fmt.Sprintf("%T:%v", v, v))...)
	}
}

func hashString(s string) uint64 {
	return hashBytes(tagString, []byte(s)...)
}

func hashPair(k, v uint64) uint64 {
	buf := binary.LittleEndian.AppendUint64(nil, k)
	buf = binary.LittleEndian.AppendUint64(buf, v)

	return hashBytes(tagMap, buf...)
}

func hashBytes(tag byte, data ...byte) uint64 {
	h := fnv.New64a()
	h.Write([]byte{tag})
	h.Write(data)

	return h.Sum64()
}
