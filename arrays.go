package abi

import (
	"fmt"
	"math/big"
)

// encodeArray encodes an array Type (t.Array != ArrayNone) per spec
// section 4.4: a fixed-length T[N] is N concatenated element
// encodings with no length prefix; a dynamic-length T[] is a length
// word followed by N element encodings. Elements of a dynamic T
// (string[], bytes[]) are themselves self-delimiting and concatenated
// directly, without per-element offsets — the source's scope does not
// independently offset array elements, and this implementation matches
// it.
func encodeArray(t Type, v any) ([]byte, error) {
	values, err := toSlice(v)
	if err != nil {
		return nil, err
	}

	elem := t.elem()

	if t.Array == ArrayFixed && len(values) != t.ArrayLen {
		return nil, errInvalidType(t.String(), "array length mismatch")
	}

	var out []byte
	if t.Array == ArrayDynamic {
		out = make([]byte, 0, wordSize+wordSize*len(values))
		out = append(out, encodeUint256Raw(int64(len(values)))...)
	} else {
		out = make([]byte, 0, wordSize*len(values))
	}

	for i, ev := range values {
		enc, err := encodeScalar(elem, ev)
		if err != nil {
			return nil, errInvalidTypeWrap(t, i, err)
		}
		out = append(out, enc...)
	}
	return out, nil
}

// decodeArray is the inverse of encodeArray; it returns the decoded
// element slice and the number of bytes consumed.
func decodeArray(t Type, data []byte) (any, int, error) {
	elem := t.elem()

	n := t.ArrayLen
	offset := 0
	if t.Array == ArrayDynamic {
		if len(data) < wordSize {
			return nil, 0, errTruncated(t, wordSize, len(data))
		}
		lengthBig := new(big.Int).SetBytes(data[:wordSize])
		if !lengthBig.IsUint64() {
			return nil, 0, errOutOfRange(t, lengthBig)
		}
		n = int(lengthBig.Uint64())
		offset = wordSize
	}

	values := make([]any, n)
	for i := 0; i < n; i++ {
		v, consumed, err := decodeScalar(elem, data[offset:])
		if err != nil {
			return nil, 0, errInvalidTypeWrap(t, i, err)
		}
		values[i] = v
		offset += consumed
	}
	return values, offset, nil
}

// encodeUint256Raw encodes a non-negative int64 as a 32-byte
// big-endian word; used for array length prefixes where the source
// value is a Go int rather than caller-supplied *big.Int.
func encodeUint256Raw(n int64) []byte {
	word := make([]byte, wordSize)
	big.NewInt(n).FillBytes(word)
	return word
}

func errInvalidTypeWrap(t Type, index int, cause error) error {
	return fmt.Errorf("%w: %q: element %d: %w", ErrInvalidType, t.String(), index, cause)
}
