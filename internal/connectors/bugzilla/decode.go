package bugzilla

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Shape names used in ShapeError.
const (
	shapeStruct   = "struct"
	shapeSequence = "array"
	shapeString   = "string"
	shapeInt      = "int"
	shapeNumber   = "number"
	shapeBool     = "boolean"
)

// as re-types v as T, or reports a ShapeError naming the wanted shape.
func as[T any](field string, v any, shape string) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, &ShapeError{Field: field, Want: shape, Got: shapeOf(v)}
	}
	return t, nil
}

// asStruct re-types v as a struct (map keyed by member name).
func asStruct(field string, v any) (map[string]any, error) {
	return as[map[string]any](field, v, shapeStruct)
}

// asSequence re-types v as an array.
func asSequence(field string, v any) ([]any, error) {
	return as[[]any](field, v, shapeSequence)
}

// asString re-types v as a string.
func asString(field string, v any) (string, error) {
	return as[string](field, v, shapeString)
}

// asBool re-types v as a boolean.
func asBool(field string, v any) (bool, error) {
	return as[bool](field, v, shapeBool)
}

// asInt converts an integral number into an int. XML-RPC yields int64,
// JSON yields json.Number (with UseNumber) or float64.
func asInt(field string, v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return int(x), nil
		}
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), nil
		}
	}
	return 0, &ShapeError{Field: field, Want: shapeInt, Got: shapeOf(v)}
}

// asFloat converts any number into a float64.
func asFloat(field string, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return f, nil
		}
	}
	return 0, &ShapeError{Field: field, Want: shapeNumber, Got: shapeOf(v)}
}

// asOptionalFloat converts a number into a pointer, keeping nil for an
// absent value so "not tracked" stays distinct from zero.
func asOptionalFloat(field string, v any) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	f, err := asFloat(field, v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// asIdentifier renders an id that may arrive as a number or a string.
func asIdentifier(field string, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	n, err := asInt(field, v)
	if err != nil {
		return "", &ShapeError{Field: field, Want: "int or string", Got: shapeOf(v)}
	}
	return strconv.Itoa(n), nil
}

// optString returns the string member field of rec, or "" when it is absent or null.
func optString(rec map[string]any, field string) (string, error) {
	v, ok := rec[field]
	if !ok || v == nil {
		return "", nil
	}
	return asString(field, v)
}

// reqString returns the string member field of rec. An absent or null
// member is a *MissingFieldError; an empty string is returned as is.
func reqString(rec map[string]any, field string) (string, error) {
	v, ok := rec[field]
	if !ok || v == nil {
		return "", &MissingFieldError{Field: field}
	}
	return asString(field, v)
}

// optSequence returns the array member field of rec, or an empty array when
// it is absent or null.
func optSequence(rec map[string]any, field string) ([]any, error) {
	v, ok := rec[field]
	if !ok || v == nil {
		return []any{}, nil
	}
	return asSequence(field, v)
}

// firstString returns the first element of the array member field, or ""
// when the array is absent or empty.
func firstString(rec map[string]any, field string) (string, bool, error) {
	seq, err := optSequence(rec, field)
	if err != nil || len(seq) == 0 {
		return "", false, err
	}
	s, err := asString(field+"[0]", seq[0])
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// shapeOf names the shape of an untyped value for error messages.
func shapeOf(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case map[string]any:
		return shapeStruct
	case []any:
		return shapeSequence
	case string:
		return shapeString
	case bool:
		return shapeBool
	case int, int32, int64:
		return shapeInt
	case float32, float64, json.Number:
		return shapeNumber
	default:
		return fmt.Sprintf("%T", v)
	}
}
