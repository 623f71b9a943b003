package abi

import (
	"encoding/hex"
	"testing"

	"github.com/test-go/testify/require"
)

func TestParseSignature(t *testing.T) {
	name, types, err := ParseSignature("transfer(address,uint256)")
	require.NoError(t, err)
	require.Equal(t, "transfer", name)
	require.Equal(t, []Type{mustType(t, "address"), mustType(t, "uint256")}, types)
}

func TestParseSignatureNoArgs(t *testing.T) {
	name, types, err := ParseSignature("s()")
	require.NoError(t, err)
	require.Equal(t, "s", name)
	require.Empty(t, types)
}

func TestParseSignatureMalformed(t *testing.T) {
	cases := []string{"transfer(address,uint256", "transferaddress,uint256)", "transfer(address,badtype)"}
	for _, sig := range cases {
		_, _, err := ParseSignature(sig)
		require.ErrorIs(t, err, ErrMalformedSignature, sig)
	}
}

// TestMethodSelector checks the literal four-byte selector values from
// spec section 8, which match the worked examples in the Solidity ABI
// specification.
func TestMethodSelector(t *testing.T) {
	cases := []struct {
		sig  string
		want string
	}{
		{"baz(uint32,bool)", "cdcd77c0"},
		{"bar(fixed128x128[2])", "ab55044d"},
		{"sam(bytes,bool,uint256[])", "a5643bf2"},
		{"s()", "86b714e2"},
	}
	for _, c := range cases {
		got := MethodSelector(c.sig)
		require.Equal(t, c.want, hex.EncodeToString(got[:]), c.sig)
	}
}
