package codec

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"dotmap/storage"
)

func decodeMsgpack(data []byte) (any, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))

	v, err := decodeMsgpackValue(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse msgpack: %w", err)
	}

	return v, nil
}

// decodeMsgpackValue walks maps entry by entry so key order survives.
func decodeMsgpackValue(dec *msgpack.Decoder) (any, error) {
	code, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}

		obj := storage.NewObject()

		for range n {
			key, err := dec.DecodeString()
			if err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}

			val, err := decodeMsgpackValue(dec)
			if err != nil {
				return nil, err
			}

			obj.Set(key, val)
		}

		return obj, nil

	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}

		seq := make([]any, 0, n)

		for range n {
			val, err := decodeMsgpackValue(dec)
			if err != nil {
				return nil, err
			}

			seq = append(seq, val)
		}

		return seq, nil

	default:
		return dec.DecodeInterfaceLoose()
	}
}

func encodeMsgpack(raw any) ([]byte, error) {
	var buf bytes.Buffer

	enc := msgpack.NewEncoder(&buf)
	if err := encodeMsgpackValue(enc, raw); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodeMsgpackValue(enc *msgpack.Encoder, raw any) error {
	if s, ok := storage.As(raw); ok {
		if err := enc.EncodeMapLen(s.Len()); err != nil {
			return err
		}

		for k, v := range s.All() {
			if err := enc.EncodeString(k); err != nil {
				return err
			}

			if err := encodeMsgpackValue(enc, v); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
		}

		return nil
	}

	if seq, ok := raw.([]any); ok {
		if err := enc.EncodeArrayLen(len(seq)); err != nil {
			return err
		}

		for _, v := range seq {
			if err := encodeMsgpackValue(enc, v); err != nil {
				return err
			}
		}

		return nil
	}

	return enc.Encode(raw)
}
