package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// word encodes v as a big-endian 32-byte word, for building expected
// payloads by hand in these tests.
func word(v int64) []byte {
	w := make([]byte, wordSize)
	big.NewInt(v).FillBytes(w)
	return w
}

func rightPad(s string) []byte {
	w := make([]byte, pad32(len(s)))
	copy(w, s)
	return w
}

func concatBytes(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// TestEncodeStaticUint is spec section 8 scenario: encode(["uint32"],[6]).
func TestEncodeStaticUint(t *testing.T) {
	types := []Type{mustType(t, "uint32")}
	got, err := EncodeArgs(types, []any{6})
	require.NoError(t, err)
	require.Equal(t, word(6), got)
}

// TestEncodeFixedArray is spec section 8 scenario:
// encode(["uint32[2]"],[[6,69]]) = word(6) ++ word(69), no length prefix.
func TestEncodeFixedArray(t *testing.T) {
	types := []Type{mustType(t, "uint32[2]")}
	got, err := EncodeArgs(types, []any{[]any{6, 69}})
	require.NoError(t, err)
	require.Equal(t, concatBytes(word(6), word(69)), got)
}

// TestEncodeDynamicArray is spec section 8 scenario:
// encode(["uint32[]"],[[6,69]]) = word(0x20) ++ word(2) ++ word(6) ++ word(69),
// the head holding the offset of the array payload.
func TestEncodeDynamicArray(t *testing.T) {
	types := []Type{mustType(t, "uint32[]")}
	got, err := EncodeArgs(types, []any{[]any{6, 69}})
	require.NoError(t, err)
	require.Equal(t, concatBytes(word(0x20), word(2), word(6), word(69)), got)
}

// TestEncodeCompositeScenario is spec section 8's worked example:
//
//	encode(["uint256","uint32[]","bytes10","bytes"],
//	       [0x123, [0x456,0x789], "1234567890", "Hello, world!"])
func TestEncodeCompositeScenario(t *testing.T) {
	types := []Type{
		mustType(t, "uint256"),
		mustType(t, "uint32[]"),
		mustType(t, "bytes10"),
		mustType(t, "bytes"),
	}
	values := []any{
		big.NewInt(0x123),
		[]any{0x456, 0x789},
		[]byte("1234567890"),
		[]byte("Hello, world!"),
	}

	got, err := EncodeArgs(types, values)
	require.NoError(t, err)

	want := concatBytes(
		word(0x123),
		word(0x80),
		rightPad("1234567890"),
		word(0xe0),
		word(2), word(0x456), word(0x789),
		word(13), rightPad("Hello, world!"),
	)
	require.Equal(t, want, got)

	decoded, err := DecodeArgs(types, got)
	require.NoError(t, err)
	require.Zero(t, decoded[0].(*big.Int).Cmp(big.NewInt(0x123)))
	arr := decoded[1].([]any)
	require.Len(t, arr, 2)
	require.Zero(t, arr[0].(*big.Int).Cmp(big.NewInt(0x456)))
	require.Zero(t, arr[1].(*big.Int).Cmp(big.NewInt(0x789)))
	require.Equal(t, []byte("1234567890"), decoded[2].([]byte))
	require.Equal(t, []byte("Hello, world!"), decoded[3].([]byte))
}

// TestDecodeSignedArray is spec section 8's signed-array decode scenario:
// an int256[] payload decodes to [-2^255, -99999, -1, 99999, 2^255-1].
func TestDecodeSignedArray(t *testing.T) {
	minVal := new(big.Int).Neg(new(big.Int).Lsh(big1, 255))
	maxVal := new(big.Int).Sub(new(big.Int).Lsh(big1, 255), big1)
	values := []*big.Int{minVal, big.NewInt(-99999), big.NewInt(-1), big.NewInt(99999), maxVal}

	types := []Type{mustType(t, "int256[]")}
	anyValues := make([]any, len(values))
	for i, v := range values {
		anyValues[i] = v
	}

	encoded, err := EncodeArgs(types, []any{anyValues})
	require.NoError(t, err)

	decoded, err := DecodeArgs(types, encoded)
	require.NoError(t, err)

	arr := decoded[0].([]any)
	require.Len(t, arr, len(values))
	for i, v := range values {
		require.Zero(t, arr[i].(*big.Int).Cmp(v), "element %d", i)
	}
}

func TestDecodeArgsOffsetTruncation(t *testing.T) {
	types := []Type{mustType(t, "bytes")}
	_, err := DecodeArgs(types, word(0x20))
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestEncodeArgsArgCountMismatch(t *testing.T) {
	types := []Type{mustType(t, "uint32"), mustType(t, "bool")}
	_, err := EncodeArgs(types, []any{6})
	require.ErrorIs(t, err, ErrInvalidType)
}
