package abi

import (
	"fmt"
	"math/big"
)

// CoerceJSONArgs converts a slice of values produced by
// encoding/json.Unmarshal (float64, string, bool, []any, nil) into the
// concrete Go values each element of types expects. It exists for
// callers — chiefly the cmd/abicodec CLI — that receive argument lists
// as JSON rather than native Go values; large integers should be
// passed as JSON strings (e.g. "123456789012345678901234") since a
// JSON number only round-trips exactly up to 2^53.
func CoerceJSONArgs(types []Type, raw []any) ([]any, error) {
	if len(types) != len(raw) {
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", ErrInvalidType, len(types), len(raw))
	}
	values := make([]any, len(raw))
	for i, t := range types {
		v, err := coerceJSONValue(t, raw[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, t, err)
		}
		values[i] = v
	}
	return values, nil
}

func coerceJSONValue(t Type, raw any) (any, error) {
	if t.Array != ArrayNone {
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("expected a JSON array, got %T", raw)
		}
		elem := t.elem()
		out := make([]any, len(list))
		for i, rv := range list {
			v, err := coerceJSONValue(elem, rv)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	}

	switch t.Kind {
	case KindUint, KindInt:
		return coerceJSONNumber(raw)
	case KindFixed, KindUFixed:
		return coerceJSONRat(raw)
	case KindBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("expected a JSON bool, got %T", raw)
		}
		return b, nil
	case KindAddress:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a JSON string, got %T", raw)
		}
		return s, nil
	case KindBytes:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a JSON string, got %T", raw)
		}
		return decodeHexOrRaw(s)
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a JSON string, got %T", raw)
		}
		return s, nil
	default:
		return nil, errInvalidType(t.String(), "unsupported kind")
	}
}

func coerceJSONNumber(raw any) (*big.Int, error) {
	switch n := raw.(type) {
	case string:
		v, ok := new(big.Int).SetString(n, 0)
		if !ok {
			return nil, fmt.Errorf("invalid integer literal %q", n)
		}
		return v, nil
	case float64:
		return new(big.Int).SetInt64(int64(n)), nil
	default:
		return nil, fmt.Errorf("expected a JSON number or numeric string, got %T", raw)
	}
}

func coerceJSONRat(raw any) (*big.Rat, error) {
	switch r := raw.(type) {
	case string:
		v, ok := new(big.Rat).SetString(r)
		if !ok {
			return nil, fmt.Errorf("invalid decimal literal %q", r)
		}
		return v, nil
	case float64:
		return new(big.Rat).SetFloat64(r), nil
	default:
		return nil, fmt.Errorf("expected a JSON number or decimal string, got %T", raw)
	}
}
