package schema

import (
	"context"
	"fmt"
)

// String accepts exactly a string value.
func String() Type {
	return newType(&Def{TypeName: "string"}, func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Undefined || value == nil {
			return nil, []Issue{newIssue(path, CodeRequired, "required")}
		}
		s, ok := value.(string)
		if !ok {
			return nil, []Issue{newIssue(path, CodeInvalidType, fmt.Sprintf("expected string, got %T", value))}
		}
		return s, nil
	})
}

// Bool accepts exactly a bool value.
func Bool() Type {
	return newType(&Def{TypeName: "bool"}, func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Undefined || value == nil {
			return nil, []Issue{newIssue(path, CodeRequired, "required")}
		}
		b, ok := value.(bool)
		if !ok {
			return nil, []Issue{newIssue(path, CodeInvalidType, fmt.Sprintf("expected bool, got %T", value))}
		}
		return b, nil
	})
}

// Number accepts any numeric value and normalizes it to float64. JSON
// decoding produces float64 for every number, so this is the validator to
// reach for on decoded JSON input.
func Number() Type {
	return newType(&Def{TypeName: "number"}, func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Undefined || value == nil {
			return nil, []Issue{newIssue(path, CodeRequired, "required")}
		}
		switch n := value.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
		return nil, []Issue{newIssue(path, CodeInvalidType, fmt.Sprintf("expected number, got %T", value))}
	})
}

// Int accepts integer values, including float64 values without a
// fractional part, and normalizes them to int64.
func Int() Type {
	return newType(&Def{TypeName: "int"}, func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Undefined || value == nil {
			return nil, []Issue{newIssue(path, CodeRequired, "required")}
		}
		switch n := value.(type) {
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		case float64:
			if n == float64(int64(n)) {
				return int64(n), nil
			}
			return nil, []Issue{newIssue(path, CodeInvalidType, "expected integer, got fractional number")}
		}
		return nil, []Issue{newIssue(path, CodeInvalidType, fmt.Sprintf("expected integer, got %T", value))}
	})
}

// Literal accepts exactly the given value.
func Literal(want any) Type {
	return newType(&Def{TypeName: "literal"}, func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Undefined {
			return nil, []Issue{newIssue(path, CodeRequired, "required")}
		}
		if value != want {
			return nil, []Issue{newIssue(path, CodeInvalidLiteral, fmt.Sprintf("expected %#v", want))}
		}
		return value, nil
	})
}
