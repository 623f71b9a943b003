package abi

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the failure taxonomy the codec can
// produce. Callers should match with errors.Is rather than comparing
// error text; the codec's type, signature, range, length, truncation
// and hex checks wrap one of these with the offending type or value
// description attached. An argument whose Go value cannot be converted
// to its declared type (an unsupported Go type, or a malformed integer,
// decimal or address literal) is reported with an error that wraps none
// of them, unless it is an array element, which wraps ErrInvalidType;
// CoerceJSONArgs reports its per-value JSON shape errors the same way.
var (
	// ErrMalformedSignature is returned when a "name(t1,t2,...)"
	// signature string cannot be parsed.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrInvalidType is returned when a type expression is unparseable
	// or violates the grammar in spec section 6.
	ErrInvalidType = errors.New("invalid type")

	// ErrOutOfRange is returned when a value does not fit the declared
	// width or sign of its type.
	ErrOutOfRange = errors.New("value out of range")

	// ErrTooLong is returned when a value exceeds a fixed-width
	// bytes<n> capacity.
	ErrTooLong = errors.New("value too long")

	// ErrTruncatedInput is returned when a decoder runs out of bytes
	// before it has consumed everything its type requires.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidHex is returned when hex-decoding a string argument
	// fails.
	ErrInvalidHex = errors.New("invalid hex input")
)

func errMalformedSignature(sig, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrMalformedSignature, sig, reason)
}

func errInvalidType(expr, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrInvalidType, expr, reason)
}

func errOutOfRange(t Type, v any) error {
	return fmt.Errorf("%w: %v does not fit %s", ErrOutOfRange, v, t)
}

func errTooLong(t Type, n int) error {
	return fmt.Errorf("%w: %d bytes exceeds %s", ErrTooLong, n, t)
}

func errTruncated(t Type, need, have int) error {
	return fmt.Errorf("%w: decoding %s needs %d bytes, have %d", ErrTruncatedInput, t, need, have)
}

func errInvalidHex(input string, cause error) error {
	return fmt.Errorf("%w: %q: %v", ErrInvalidHex, input, cause)
}
