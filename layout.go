package abi

import (
	"fmt"
	"math/big"
)

// encodeValue dispatches a single top-level argument to the array or
// scalar codec depending on its Type.
func encodeValue(t Type, v any) ([]byte, error) {
	if t.Array != ArrayNone {
		return encodeArray(t, v)
	}
	return encodeScalar(t, v)
}

// decodeValue is the inverse of encodeValue.
func decodeValue(t Type, data []byte) (any, int, error) {
	if t.Array != ArrayNone {
		return decodeArray(t, data)
	}
	return decodeScalar(t, data)
}

// EncodeArgs encodes an ordered list of typed arguments using the
// head/tail layout scheme of spec section 4.5: static arguments are
// placed directly in the head; dynamic arguments leave an absolute
// byte offset in the head and their payload is appended, in order, to
// the tail region that follows the head.
func EncodeArgs(types []Type, values []any) ([]byte, error) {
	if len(types) != len(values) {
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", ErrInvalidType, len(types), len(values))
	}

	headSize := 0
	for _, t := range types {
		if t.IsDynamic() {
			headSize += wordSize
		} else {
			headSize += t.StaticWidthBytes()
		}
	}

	heads := make([][]byte, len(types))
	var tail []byte
	for i, t := range types {
		if t.IsDynamic() {
			payload, err := encodeValue(t, values[i])
			if err != nil {
				return nil, fmt.Errorf("argument %d (%s): %w", i, t, err)
			}
			offset := headSize + len(tail)
			heads[i] = encodeUint256Raw(int64(offset))
			tail = append(tail, payload...)
		} else {
			enc, err := encodeValue(t, values[i])
			if err != nil {
				return nil, fmt.Errorf("argument %d (%s): %w", i, t, err)
			}
			heads[i] = enc
		}
	}

	out := make([]byte, 0, headSize+len(tail))
	for _, h := range heads {
		out = append(out, h...)
	}
	out = append(out, tail...)
	return out, nil
}

// DecodeArgs decodes an ordered list of typed arguments from a byte
// string laid out per spec section 4.5. Offsets are absolute from the
// start of the argument region (data[0]), not relative to the offset
// word, per spec's "Offset discipline".
func DecodeArgs(types []Type, data []byte) ([]any, error) {
	results := make([]any, len(types))
	cursor := 0

	for i, t := range types {
		if t.IsDynamic() {
			if cursor+wordSize > len(data) {
				return nil, fmt.Errorf("argument %d (%s): %w", i, t, errTruncated(t, wordSize, len(data)-cursor))
			}
			offsetBig := new(big.Int).SetBytes(data[cursor : cursor+wordSize])
			if !offsetBig.IsUint64() {
				return nil, fmt.Errorf("argument %d (%s): %w", i, t, errOutOfRange(t, offsetBig))
			}
			offset := int(offsetBig.Uint64())
			if offset > len(data) {
				return nil, fmt.Errorf("argument %d (%s): %w", i, t, errTruncated(t, offset, len(data)))
			}
			v, _, err := decodeValue(t, data[offset:])
			if err != nil {
				return nil, fmt.Errorf("argument %d (%s): %w", i, t, err)
			}
			results[i] = v
			cursor += wordSize
		} else {
			width := t.StaticWidthBytes()
			if cursor+width > len(data) {
				return nil, fmt.Errorf("argument %d (%s): %w", i, t, errTruncated(t, width, len(data)-cursor))
			}
			v, _, err := decodeValue(t, data[cursor:cursor+width])
			if err != nil {
				return nil, fmt.Errorf("argument %d (%s): %w", i, t, err)
			}
			results[i] = v
			cursor += width
		}
	}

	return results, nil
}
