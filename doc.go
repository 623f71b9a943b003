/*
Package abi implements the Contract ABI binary argument-encoding
convention: given a textual function signature and a list of argument
values, it produces the exact byte string a caller places in a
transaction's input data, and given a signature and a returned byte
string it recovers the typed values.

Overview

The package is layered bottom-up:

  - Type (types.go) parses a single type expression ("uint32",
    "fixed128x128[2]", "bytes10", ...) into a tagged-variant descriptor
    carrying its kind, bit width and array shape.
  - primitives.go encodes/decodes a single value into/from a 32-byte
    word (or, for dynamic bytes/string, a length-prefixed payload).
  - arrays.go builds fixed- and dynamic-length arrays of primitives on
    top of that.
  - layout.go implements the head/tail offset scheme used to encode and
    decode an ordered list of arguments of mixed static/dynamic type.
  - signature.go parses "name(t1,t2,...)" and computes the 4-byte
    method selector.
  - abi.go adds the convenience entry points BuildPayload and
    DecodeArgsHex on top of EncodeArgs/DecodeArgs (layout.go) and
    MethodSelector (signature.go).

Quick start

	name, types, err := abi.ParseSignature("transfer(address,uint256)")
	payload, err := abi.BuildPayload("transfer(address,uint256)", []any{
		common.HexToAddress("0x..."),
		big.NewInt(1000),
	})

Everything here is pure and synchronous: no shared state, no I/O, and
calls over disjoint inputs may run concurrently without coordination.
*/
package abi
