package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// ParseSignature splits a "name(t1,t2,...,tN)" signature into the
// method name and its parsed argument types, per spec section 4.1.
func ParseSignature(sig string) (name string, types []Type, err error) {
	if !strings.HasSuffix(sig, ")") {
		return "", nil, errMalformedSignature(sig, "missing trailing ')'")
	}

	open := strings.IndexByte(sig, '(')
	if open < 0 {
		return "", nil, errMalformedSignature(sig, "missing '('")
	}

	name = sig[:open]
	inner := sig[open+1 : len(sig)-1]

	if inner == "" {
		return name, nil, nil
	}

	parts := strings.Split(inner, ",")
	types = make([]Type, len(parts))
	for i, p := range parts {
		t, err := ParseType(p)
		if err != nil {
			return "", nil, errMalformedSignature(sig, err.Error())
		}
		types[i] = t
	}
	return name, types, nil
}

// MethodSelector computes the 4-byte function selector: the first four
// bytes of the Keccak-256 hash of the signature's UTF-8 bytes, per spec
// section 4.1. The caller is responsible for supplying the canonical
// form of the signature (e.g. "uint256" rather than "uint"); this
// function performs no canonicalization of its own, matching the
// teacher's identifier() (types.go) and the original Python source's
// enc_method (empyrean/abi.py), both of which hash exactly the text
// they are given.
func MethodSelector(signature string) [4]byte {
	hash := crypto.Keccak256([]byte(signature))
	var sel [4]byte
	copy(sel[:], hash[:4])
	return sel
}
