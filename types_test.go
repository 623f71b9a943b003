package abi

import (
	"testing"

	"github.com/test-go/testify/require"
)

func TestParseTypeBaseKinds(t *testing.T) {
	cases := []struct {
		expr string
		want Type
	}{
		{"uint32", Type{Kind: KindUint, Bits: 32}},
		{"uint", Type{Kind: KindUint, Bits: 256}},
		{"int", Type{Kind: KindInt, Bits: 256}},
		{"int8", Type{Kind: KindInt, Bits: 8}},
		{"bool", Type{Kind: KindBool}},
		{"address", Type{Kind: KindAddress, Bits: 160}},
		{"bytes10", Type{Kind: KindBytes, Size: 10}},
		{"bytes", Type{Kind: KindBytes, Size: 0}},
		{"string", Type{Kind: KindString, Size: 0}},
		{"fixed128x128", Type{Kind: KindFixed, High: 128, Low: 128, Bits: 256}},
		{"ufixed64x192", Type{Kind: KindUFixed, High: 64, Low: 192, Bits: 256}},
		{"fixed", Type{Kind: KindFixed, High: 0, Low: 256, Bits: 256}},
	}

	for _, c := range cases {
		got, err := ParseType(c.expr)
		require.NoError(t, err, c.expr)
		require.Equal(t, c.want, got, c.expr)
	}
}

func TestParseTypeArrays(t *testing.T) {
	fixed, err := ParseType("uint32[2]")
	require.NoError(t, err)
	require.Equal(t, Type{Kind: KindUint, Bits: 32, Array: ArrayFixed, ArrayLen: 2}, fixed)

	dyn, err := ParseType("uint32[]")
	require.NoError(t, err)
	require.Equal(t, Type{Kind: KindUint, Bits: 32, Array: ArrayDynamic}, dyn)
}

func TestParseTypeInvalid(t *testing.T) {
	invalid := []string{
		"uint7",       // not a multiple of 8
		"uint264",     // exceeds 256
		"bytes33",     // exceeds 32
		"bytes0",      // below 1
		"bool8",       // no numeric suffix allowed
		"address20",   // no numeric suffix allowed
		"string32",    // open question (b): rejected
		"fixed127x1",  // high not a multiple of 8
		"fixed128x129", // high+low > 256
		"notakind256",
		"uint[3",    // unbalanced bracket
		"uint32[-1]", // invalid length
	}
	for _, expr := range invalid {
		_, err := ParseType(expr)
		require.ErrorIs(t, err, ErrInvalidType, expr)
	}
}

func TestTypeIsDynamic(t *testing.T) {
	require.False(t, mustType(t, "uint256").IsDynamic())
	require.False(t, mustType(t, "bytes32").IsDynamic())
	require.True(t, mustType(t, "bytes").IsDynamic())
	require.True(t, mustType(t, "string").IsDynamic())
	require.True(t, mustType(t, "uint32[]").IsDynamic())
	require.False(t, mustType(t, "uint32[4]").IsDynamic())
	require.True(t, mustType(t, "string[3]").IsDynamic())
}

func TestTypeStaticWidth(t *testing.T) {
	require.Equal(t, 32, mustType(t, "uint256").StaticWidthBytes())
	require.Equal(t, 64, mustType(t, "uint32[2]").StaticWidthBytes())
	require.Equal(t, 0, mustType(t, "bytes").StaticWidthBytes())
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "uint256", mustType(t, "uint").String())
	require.Equal(t, "fixed128x128[2]", mustType(t, "fixed128x128[2]").String())
	require.Equal(t, "bytes10[]", mustType(t, "bytes10[]").String())
}

func mustType(t *testing.T, expr string) Type {
	t.Helper()
	ty, err := ParseType(expr)
	require.NoError(t, err)
	return ty
}
