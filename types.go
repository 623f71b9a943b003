package abi

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the base ABI kind of a Type, independent of its bit width or
// array shape.
type Kind uint8

const (
	KindUint Kind = iota
	KindInt
	KindBool
	KindAddress
	KindBytes
	KindString
	KindFixed
	KindUFixed
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindFixed:
		return "fixed"
	case KindUFixed:
		return "ufixed"
	default:
		return "unknown"
	}
}

// ArrayKind distinguishes whether a Type is a bare value, a fixed-length
// array, or a dynamic-length array.
type ArrayKind uint8

const (
	ArrayNone ArrayKind = iota
	ArrayFixed
	ArrayDynamic
)

// Type is a tagged-variant descriptor for a single ABI type expression.
// It replaces the polymorphic per-kind object hierarchy of the source
// implementation with one value matched exhaustively by Kind, per the
// static/dynamic invariants of spec section 3.
type Type struct {
	Kind Kind

	// Bits is the total bit width for Uint/Int (8..256) and Address
	// (always 160). Unused for Bool/Bytes/String.
	Bits int

	// High and Low are the integer and fractional bit widths for
	// Fixed/UFixed; Bits is their sum.
	High int
	Low  int

	// Size is the fixed byte size (1..32) for Bytes<n>, or 0 to denote
	// a dynamic-length bytes value. Unused for other kinds.
	Size int

	Array    ArrayKind
	ArrayLen int // valid only when Array == ArrayFixed
}

// IsDynamic reports whether the type's encoded size depends on the
// value rather than the type alone.
func (t Type) IsDynamic() bool {
	if t.Array == ArrayDynamic {
		return true
	}
	switch t.Kind {
	case KindString:
		return true
	case KindBytes:
		return t.Size == 0
	default:
		return false
	}
}

// StaticWidthBytes returns the encoded width in bytes for a static
// type, or 0 for a dynamic one (use IsDynamic to distinguish "dynamic"
// from "zero-length array", which cannot occur here since ArrayLen is
// always > 0 for ArrayFixed).
func (t Type) StaticWidthBytes() int {
	if t.IsDynamic() {
		return 0
	}
	n := 1
	if t.Array == ArrayFixed {
		n = t.ArrayLen
	}
	return wordSize * n
}

// elem returns the element type of an array Type (Array == ArrayNone,
// otherwise identical). Calling it on a non-array Type is a no-op.
func (t Type) elem() Type {
	t.Array = ArrayNone
	t.ArrayLen = 0
	return t
}

// String renders the canonical ABI type name, e.g. "uint256[2]",
// "fixed128x128", "bytes10[]".
func (t Type) String() string {
	var base string
	switch t.Kind {
	case KindUint:
		base = fmt.Sprintf("uint%d", t.Bits)
	case KindInt:
		base = fmt.Sprintf("int%d", t.Bits)
	case KindBool:
		base = "bool"
	case KindAddress:
		base = "address"
	case KindBytes:
		if t.Size == 0 {
			base = "bytes"
		} else {
			base = fmt.Sprintf("bytes%d", t.Size)
		}
	case KindString:
		base = "string"
	case KindFixed:
		base = fmt.Sprintf("fixed%dx%d", t.High, t.Low)
	case KindUFixed:
		base = fmt.Sprintf("ufixed%dx%d", t.High, t.Low)
	default:
		base = "unknown"
	}
	switch t.Array {
	case ArrayFixed:
		return fmt.Sprintf("%s[%d]", base, t.ArrayLen)
	case ArrayDynamic:
		return base + "[]"
	default:
		return base
	}
}

// ParseType parses a single type expression per the grammar in spec
// section 6:
//
//	type  := base array?
//	base  := "uint"N | "int"N | "bool" | "address"
//	       | "bytes" N? | "string"
//	       | "fixed" H "x" L | "ufixed" H "x" L
//	array := "[]" | "[" N "]"
func ParseType(expr string) (Type, error) {
	base, arr, arrLen, err := peelArray(expr)
	if err != nil {
		return Type{}, errInvalidType(expr, err.Error())
	}

	t, err := parseBase(base)
	if err != nil {
		return Type{}, errInvalidType(expr, err.Error())
	}

	t.Array = arr
	t.ArrayLen = arrLen
	return t, nil
}

// peelArray strips at most one trailing "[N]" or "[]" suffix, per spec
// section 4.2 step 1 ("at most one level in this spec").
func peelArray(expr string) (base string, arr ArrayKind, n int, err error) {
	if !strings.HasSuffix(expr, "]") {
		return expr, ArrayNone, 0, nil
	}

	open := strings.LastIndex(expr, "[")
	if open < 0 {
		return "", ArrayNone, 0, fmt.Errorf("unbalanced '['")
	}

	base = expr[:open]
	inner := expr[open+1 : len(expr)-1]
	if inner == "" {
		return base, ArrayDynamic, 0, nil
	}

	n, convErr := strconv.Atoi(inner)
	if convErr != nil || n <= 0 {
		return "", ArrayNone, 0, fmt.Errorf("invalid array length %q", inner)
	}
	return base, ArrayFixed, n, nil
}

// parseBase parses the kind and numeric tail of a type expression with
// its array suffix already removed, per spec section 4.2 steps 2-4.
func parseBase(base string) (Type, error) {
	i := 0
	for i < len(base) && (base[i] < '0' || base[i] > '9') {
		i++
	}
	prefix, tail := base[:i], base[i:]

	switch prefix {
	case "uint", "int":
		bits := 256
		if tail != "" {
			v, err := strconv.Atoi(tail)
			if err != nil {
				return Type{}, fmt.Errorf("invalid bit width %q", tail)
			}
			bits = v
		}
		if bits%8 != 0 || bits < 8 || bits > 256 {
			return Type{}, fmt.Errorf("bit width %d must be a multiple of 8 in [8,256]", bits)
		}
		if prefix == "uint" {
			return Type{Kind: KindUint, Bits: bits}, nil
		}
		return Type{Kind: KindInt, Bits: bits}, nil

	case "bool":
		if tail != "" {
			return Type{}, fmt.Errorf("bool takes no numeric suffix")
		}
		return Type{Kind: KindBool}, nil

	case "address":
		if tail != "" {
			return Type{}, fmt.Errorf("address takes no numeric suffix")
		}
		return Type{Kind: KindAddress, Bits: 160}, nil

	case "bytes":
		if tail == "" {
			return Type{Kind: KindBytes, Size: 0}, nil
		}
		size, err := strconv.Atoi(tail)
		if err != nil || size < 1 || size > 32 {
			return Type{}, fmt.Errorf("bytes size %q must be an integer in [1,32]", tail)
		}
		return Type{Kind: KindBytes, Size: size}, nil

	case "string":
		// Open question (b): string<N> is accepted parser-side by the
		// source but is not part of the published ABI grammar; this
		// implementation rejects it (see SPEC_FULL.md section 13).
		if tail != "" {
			return Type{}, fmt.Errorf("string takes no numeric suffix")
		}
		return Type{Kind: KindString, Size: 0}, nil

	case "fixed", "ufixed":
		high, low := 0, 256
		if tail != "" {
			parts := strings.SplitN(tail, "x", 2)
			if len(parts) != 2 {
				return Type{}, fmt.Errorf("%s%s: expected HxL", prefix, tail)
			}
			h, err1 := strconv.Atoi(parts[0])
			l, err2 := strconv.Atoi(parts[1])
			if err1 != nil || err2 != nil {
				return Type{}, fmt.Errorf("%s%s: expected HxL integers", prefix, tail)
			}
			high, low = h, l
		}
		if high%8 != 0 || low%8 != 0 || low <= 0 || high < 0 || high+low > 256 {
			return Type{}, fmt.Errorf("%sx%s: H and L must be multiples of 8 with H+L<=256", strconv.Itoa(high), strconv.Itoa(low))
		}
		kind := KindFixed
		if prefix == "ufixed" {
			kind = KindUFixed
		}
		return Type{Kind: kind, High: high, Low: low, Bits: high + low}, nil

	default:
		return Type{}, fmt.Errorf("unknown base type %q", prefix)
	}
}
