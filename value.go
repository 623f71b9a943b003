package abi

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// toBigInt coerces a caller-supplied argument into an arbitrary
// precision integer. *big.Int is accepted as-is; the native integer
// kinds are accepted for convenience.
func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case int:
		return big.NewInt(int64(n)), nil
	case int8:
		return big.NewInt(int64(n)), nil
	case int16:
		return big.NewInt(int64(n)), nil
	case int32:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint8:
		return big.NewInt(int64(n)), nil
	case uint16:
		return big.NewInt(int64(n)), nil
	case uint32:
		return big.NewInt(int64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case string:
		i, ok := new(big.Int).SetString(n, 0)
		if !ok {
			return nil, fmt.Errorf("invalid integer literal %q", n)
		}
		return i, nil
	default:
		return nil, fmt.Errorf("cannot use %T as an integer value", v)
	}
}

// toRat coerces a caller-supplied argument into a rational number for
// Fixed/UFixed encoding. Per spec Design Notes section 9, floating
// input is accepted but never allowed to leak precision loss into the
// encoded bytes: a float64 is converted through big.Float first so the
// scaling in encodeFixedPoint always operates on an exact rational.
func toRat(v any) (*big.Rat, error) {
	switch r := v.(type) {
	case *big.Rat:
		return r, nil
	case float64:
		f := new(big.Float).SetFloat64(r)
		rat, _ := f.Rat(nil)
		if rat == nil {
			return nil, fmt.Errorf("%v is not a finite number", r)
		}
		return rat, nil
	case string:
		rat, ok := new(big.Rat).SetString(r)
		if !ok {
			return nil, fmt.Errorf("invalid decimal literal %q", r)
		}
		return rat, nil
	case *big.Int:
		return new(big.Rat).SetInt(r), nil
	case int:
		return new(big.Rat).SetInt64(int64(r)), nil
	default:
		return nil, fmt.Errorf("cannot use %T as a fixed-point value", v)
	}
}

// toAddress coerces a caller-supplied argument into a 160-bit address.
func toAddress(v any) (common.Address, error) {
	switch a := v.(type) {
	case common.Address:
		return a, nil
	case [20]byte:
		return common.Address(a), nil
	case string:
		if !common.IsHexAddress(a) {
			return common.Address{}, fmt.Errorf("invalid address literal %q", a)
		}
		return common.HexToAddress(a), nil
	case *big.Int:
		if a.Sign() < 0 || a.BitLen() > 160 {
			return common.Address{}, fmt.Errorf("%s does not fit a 160-bit address", a)
		}
		var addr common.Address
		a.FillBytes(addr[:])
		return addr, nil
	default:
		return common.Address{}, fmt.Errorf("cannot use %T as an address value", v)
	}
}

// toBytes coerces a caller-supplied argument into a raw byte string.
// A string is accepted as hex when 0x-prefixed, otherwise as its raw
// UTF-8 bytes (matching the Bytes kind's "raw byte string" value, not
// the String kind's text transcoding).
func toBytes(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		if strings.HasPrefix(b, "0x") || strings.HasPrefix(b, "0X") {
			return decodeHexOrRaw(b)
		}
		return []byte(b), nil
	default:
		return nil, fmt.Errorf("cannot use %T as a bytes value", v)
	}
}

func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("cannot use %T as a string value", v)
	}
	return s, nil
}

func toBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("cannot use %T as a bool value", v)
	}
	return b, nil
}

// toSlice coerces a caller-supplied argument into the element list of
// an array value.
func toSlice(v any) ([]any, error) {
	s, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("cannot use %T as an array value", v)
	}
	return s, nil
}

// encodeScalar encodes a single non-array value (t.Array must be
// ArrayNone) per the kind dispatch of spec section 4.3. Static kinds
// return exactly one word; dynamic Bytes/String return a variable
// length length-prefixed payload.
func encodeScalar(t Type, v any) ([]byte, error) {
	switch t.Kind {
	case KindUint:
		n, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		return encodeUintWord(t, n)
	case KindInt:
		n, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		return encodeIntWord(t, n)
	case KindBool:
		b, err := toBool(v)
		if err != nil {
			return nil, err
		}
		return encodeBoolWord(b), nil
	case KindAddress:
		addr, err := toAddress(v)
		if err != nil {
			return nil, err
		}
		return encodeAddressWord(addr), nil
	case KindBytes:
		b, err := toBytes(v)
		if err != nil {
			return nil, err
		}
		if t.Size == 0 {
			return encodeDynamicBytes(b), nil
		}
		return encodeFixedBytesWord(t, b)
	case KindString:
		s, err := toString(v)
		if err != nil {
			return nil, err
		}
		return encodeDynamicBytes([]byte(s)), nil
	case KindFixed:
		r, err := toRat(v)
		if err != nil {
			return nil, err
		}
		return encodeFixedPoint(t, r, true)
	case KindUFixed:
		r, err := toRat(v)
		if err != nil {
			return nil, err
		}
		return encodeFixedPoint(t, r, false)
	default:
		return nil, errInvalidType(t.String(), "unsupported kind")
	}
}

// decodeScalar decodes a single non-array value from the front of
// data, returning the number of bytes consumed (wordSize for every
// static kind, 32+ceil(len/32)*32 for dynamic Bytes/String).
func decodeScalar(t Type, data []byte) (any, int, error) {
	dynamic := t.Kind == KindString || (t.Kind == KindBytes && t.Size == 0)
	if !dynamic && len(data) < wordSize {
		return nil, 0, errTruncated(t, wordSize, len(data))
	}

	switch t.Kind {
	case KindUint:
		n, err := decodeUintWord(t, data[:wordSize])
		return n, wordSize, err
	case KindInt:
		n, err := decodeIntWord(t, data[:wordSize])
		return n, wordSize, err
	case KindBool:
		return decodeBoolWord(data[:wordSize]), wordSize, nil
	case KindAddress:
		return decodeAddressWord(data[:wordSize]), wordSize, nil
	case KindBytes:
		if t.Size != 0 {
			return decodeFixedBytesWord(t, data[:wordSize]), wordSize, nil
		}
		return decodeDynamicBytes(t, data)
	case KindString:
		b, consumed, err := decodeDynamicBytes(t, data)
		if err != nil {
			return nil, 0, err
		}
		return string(b), consumed, nil
	case KindFixed:
		r, err := decodeFixedPoint(t, data[:wordSize], true)
		return r, wordSize, err
	case KindUFixed:
		r, err := decodeFixedPoint(t, data[:wordSize], false)
		return r, wordSize, err
	default:
		return nil, 0, errInvalidType(t.String(), "unsupported kind")
	}
}
