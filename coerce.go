package zodix

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/coji/zodix/schema"
)

// Coercion validators for the classic engine generation. Each one turns a
// normalized string value into a typed one; the v2 equivalents live in
// coerce_v2.go and share only the behavioral contract, since the two
// engines' construction APIs are not source-compatible.

// BoolAsString accepts exactly "true" or "false" and produces a bool.
func BoolAsString() schema.Type {
	return schema.String().Transform(coerceBool)
}

// CheckboxAsString models an HTML checkbox: "on" produces true, an absent
// value produces false, anything else fails.
func CheckboxAsString() schema.Type {
	return schema.Literal("on").Optional().Transform(coerceCheckbox)
}

// IntAsString accepts a numeric string with no fractional part and
// produces an int64.
func IntAsString() schema.Type {
	return schema.String().Transform(coerceInt)
}

// NumAsString accepts a numeric string, fractional allowed, and produces a
// float64.
func NumAsString() schema.Type {
	return schema.String().Transform(coerceNum)
}

// UUIDAsString accepts an RFC 4122 string and produces a uuid.UUID.
func UUIDAsString() schema.Type {
	return schema.String().Transform(coerceUUID)
}

// TimeAsString accepts an RFC 3339 string and produces a time.Time.
func TimeAsString() schema.Type {
	return schema.String().Transform(coerceTime)
}

// Repeatable validates a field that may arrive as a scalar or as a list,
// by boxing a lone scalar into a single-element slice before array
// validation. Normalization gives repeated keys a list and single keys a
// scalar; this is the schema-side answer to that asymmetry.
func Repeatable(elem schema.Type) schema.Type {
	return schema.Preprocess(boxScalar, schema.Array(elem))
}

///////////////////////////////////////////////////////////////////////////////
// Shared coercion logic
///////////////////////////////////////////////////////////////////////////////

// The transform bodies are shared across the two generations; only the
// surrounding construction differs.

func coerceBool(value any) (any, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return nil, fmt.Errorf(`expected "true" or "false", got %q`, value)
}

func coerceCheckbox(value any) (any, error) {
	if value == "on" {
		return true, nil
	}
	// Only the absent sentinel reaches here; "off" and friends already
	// failed the literal check.
	return false, nil
}

func coerceInt(value any) (any, error) {
	s := value.(string)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("expected a numeric string, got %q", s)
	}
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("expected an integer, got %q", s)
	}
	return int64(f), nil
}

func coerceNum(value any) (any, error) {
	s := value.(string)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("expected a numeric string, got %q", s)
	}
	return f, nil
}

func coerceUUID(value any) (any, error) {
	id, err := uuid.Parse(value.(string))
	if err != nil {
		return nil, fmt.Errorf("expected a UUID: %w", err)
	}
	return id, nil
}

func coerceTime(value any) (any, error) {
	t, err := time.Parse(time.RFC3339, value.(string))
	if err != nil {
		return nil, fmt.Errorf("expected an RFC 3339 timestamp: %w", err)
	}
	return t, nil
}

func boxScalar(value any) any {
	if s, ok := value.(string); ok {
		return []string{s}
	}
	return value
}
