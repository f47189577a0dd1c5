package zodix

import (
	v2 "github.com/coji/zodix/schema/v2"
)

// Coercion schemas for the v2 engine generation, behaviorally identical to
// their classic counterparts in coerce.go. The v2 engine composes through
// package functions instead of methods, so these are written separately.

// BoolAsStringV2 accepts exactly "true" or "false" and produces a bool.
func BoolAsStringV2() v2.Schema {
	return v2.Pipe(v2.String(), coerceBool)
}

// CheckboxAsStringV2 models an HTML checkbox: "on" produces true, an
// absent value produces false, anything else fails.
func CheckboxAsStringV2() v2.Schema {
	return v2.Pipe(v2.Optional(v2.Literal("on")), func(value any) (any, error) {
		if value == v2.Absent {
			return false, nil
		}
		return coerceCheckbox(value)
	})
}

// IntAsStringV2 accepts a numeric string with no fractional part and
// produces an int64.
func IntAsStringV2() v2.Schema {
	return v2.Pipe(v2.String(), coerceInt)
}

// NumAsStringV2 accepts a numeric string, fractional allowed, and produces
// a float64.
func NumAsStringV2() v2.Schema {
	return v2.Pipe(v2.String(), coerceNum)
}

// UUIDAsStringV2 accepts an RFC 4122 string and produces a uuid.UUID.
func UUIDAsStringV2() v2.Schema {
	return v2.Pipe(v2.String(), coerceUUID)
}

// TimeAsStringV2 accepts an RFC 3339 string and produces a time.Time.
func TimeAsStringV2() v2.Schema {
	return v2.Pipe(v2.String(), coerceTime)
}

// RepeatableV2 validates a field that may arrive as a scalar or as a list,
// boxing a lone scalar before array validation.
func RepeatableV2(elem v2.Schema) v2.Schema {
	return v2.Preprocess(boxScalar, v2.Array(elem))
}
