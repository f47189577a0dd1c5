package v2

import (
	"context"
	"fmt"
	"sort"
)

type absent struct{}

func (absent) String() string { return "<absent>" }

// Absent stands in for a missing value. Object hands it to field schemas
// whose key is not present in the input; Optional lets it through,
// everything else rejects it with a required issue.
var Absent any = absent{}

///////////////////////////////////////////////////////////////////////////////
// Primitives
///////////////////////////////////////////////////////////////////////////////

// String accepts exactly a string value.
func String() Schema {
	return newSchema(&Internals{TypeName: "string", run: func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Absent || value == nil {
			return nil, []Issue{{Path: path, Code: CodeRequired, Message: "required", Input: value}}
		}
		s, ok := value.(string)
		if !ok {
			return nil, []Issue{{Path: path, Code: CodeInvalidType, Message: fmt.Sprintf("expected string, got %T", value), Input: value}}
		}
		return s, nil
	}})
}

// Bool accepts exactly a bool value.
func Bool() Schema {
	return newSchema(&Internals{TypeName: "bool", run: func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Absent || value == nil {
			return nil, []Issue{{Path: path, Code: CodeRequired, Message: "required", Input: value}}
		}
		b, ok := value.(bool)
		if !ok {
			return nil, []Issue{{Path: path, Code: CodeInvalidType, Message: fmt.Sprintf("expected bool, got %T", value), Input: value}}
		}
		return b, nil
	}})
}

// Number accepts numeric values and normalizes them to float64.
func Number() Schema {
	return newSchema(&Internals{TypeName: "number", run: func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Absent || value == nil {
			return nil, []Issue{{Path: path, Code: CodeRequired, Message: "required", Input: value}}
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
		return nil, []Issue{{Path: path, Code: CodeInvalidType, Message: fmt.Sprintf("expected number, got %T", value), Input: value}}
	}})
}

// Int accepts integer values, including integral float64, and normalizes
// them to int64.
func Int() Schema {
	return newSchema(&Internals{TypeName: "int", run: func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Absent || value == nil {
			return nil, []Issue{{Path: path, Code: CodeRequired, Message: "required", Input: value}}
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
			return nil, []Issue{{Path: path, Code: CodeInvalidType, Message: "expected integer, got fractional number", Input: value}}
		}
		return nil, []Issue{{Path: path, Code: CodeInvalidType, Message: fmt.Sprintf("expected integer, got %T", value), Input: value}}
	}})
}

// Literal accepts exactly the given value.
func Literal(want any) Schema {
	return newSchema(&Internals{TypeName: "literal", run: func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Absent {
			return nil, []Issue{{Path: path, Code: CodeRequired, Message: "required", Input: value}}
		}
		if value != want {
			return nil, []Issue{{Path: path, Code: CodeInvalidLiteral, Message: fmt.Sprintf("expected %#v", want), Input: value}}
		}
		return value, nil
	}})
}

///////////////////////////////////////////////////////////////////////////////
// Composites
///////////////////////////////////////////////////////////////////////////////

// Object builds a schema over a map[string]any input from this engine's
// own field schemas. Fields are required unless wrapped in Optional;
// unknown input keys are stripped. Classic-generation validators cannot
// appear here, generations never mix inside one schema tree.
func Object(fields map[string]Schema) Schema {
	in := &Internals{TypeName: "object"}
	names := make([]string, 0, len(fields))
	for name, field := range fields {
		names = append(names, name)
		if field.Internals().Async {
			in.Async = true
		}
	}
	sort.Strings(names)

	in.run = func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Absent || value == nil {
			return nil, []Issue{{Path: path, Code: CodeRequired, Message: "required", Input: value}}
		}
		m, ok := value.(map[string]any)
		if !ok {
			return nil, []Issue{{Path: path, Code: CodeInvalidType, Message: fmt.Sprintf("expected object, got %T", value), Input: value}}
		}

		out := make(map[string]any, len(fields))
		var issues []Issue
		for _, name := range names {
			fieldValue, present := m[name]
			if !present {
				fieldValue = Absent
			}
			got, fieldIssues := fields[name].Internals().run(ctx, childPath(path, name), fieldValue)
			if len(fieldIssues) > 0 {
				issues = append(issues, fieldIssues...)
				continue
			}
			if got == Absent {
				continue
			}
			out[name] = got
		}
		if len(issues) > 0 {
			return nil, issues
		}
		return out, nil
	}
	return newSchema(in)
}

// Array builds a schema over an ordered list, accepting []any or []string
// input and producing []any.
func Array(elem Schema) Schema {
	in := &Internals{TypeName: "array", Async: elem.Internals().Async}
	in.run = func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Absent || value == nil {
			return nil, []Issue{{Path: path, Code: CodeRequired, Message: "required", Input: value}}
		}

		var items []any
		switch v := value.(type) {
		case []any:
			items = v
		case []string:
			items = make([]any, len(v))
			for i, s := range v {
				items[i] = s
			}
		default:
			return nil, []Issue{{Path: path, Code: CodeInvalidType, Message: fmt.Sprintf("expected array, got %T", value), Input: value}}
		}

		out := make([]any, 0, len(items))
		var issues []Issue
		for i, item := range items {
			got, itemIssues := elem.Internals().run(ctx, childPath(path, i), item)
			if len(itemIssues) > 0 {
				issues = append(issues, itemIssues...)
				continue
			}
			out = append(out, got)
		}
		if len(issues) > 0 {
			return nil, issues
		}
		return out, nil
	}
	return newSchema(in)
}

///////////////////////////////////////////////////////////////////////////////
// Combinators
///////////////////////////////////////////////////////////////////////////////

// Optional wraps s so an absent value passes through instead of failing.
func Optional(s Schema) Schema {
	inner := s.Internals()
	in := &Internals{TypeName: inner.TypeName, Async: inner.Async, Optional: true}
	in.run = func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Absent {
			return Absent, nil
		}
		return inner.run(ctx, path, value)
	}
	return newSchema(in)
}

// Refine wraps s with an additional predicate on the parsed value.
func Refine(s Schema, check func(value any) bool, message string) Schema {
	inner := s.Internals()
	in := &Internals{TypeName: inner.TypeName, Async: inner.Async, Optional: inner.Optional}
	in.run = func(ctx context.Context, path []any, value any) (any, []Issue) {
		out, issues := inner.run(ctx, path, value)
		if len(issues) > 0 || out == Absent {
			return out, issues
		}
		if !check(out) {
			return nil, []Issue{{Path: path, Code: CodeCustom, Message: message, Input: value}}
		}
		return out, nil
	}
	return newSchema(in)
}

// RefineAsync is Refine for predicates that need a context. The resulting
// schema requires the async entry points.
func RefineAsync(s Schema, check func(ctx context.Context, value any) (bool, error), message string) Schema {
	inner := s.Internals()
	in := &Internals{TypeName: inner.TypeName, Async: true, Optional: inner.Optional}
	in.run = func(ctx context.Context, path []any, value any) (any, []Issue) {
		out, issues := inner.run(ctx, path, value)
		if len(issues) > 0 || out == Absent {
			return out, issues
		}
		ok, err := check(ctx, out)
		if err != nil {
			return nil, []Issue{{Path: path, Code: CodeCustom, Message: err.Error(), Input: value}}
		}
		if !ok {
			return nil, []Issue{{Path: path, Code: CodeCustom, Message: message, Input: value}}
		}
		return out, nil
	}
	return newSchema(in)
}

// Pipe maps the parsed output of s through fn. An error from fn becomes a
// custom issue at the value's path.
func Pipe(s Schema, fn func(value any) (any, error)) Schema {
	inner := s.Internals()
	in := &Internals{TypeName: inner.TypeName, Async: inner.Async, Optional: inner.Optional}
	in.run = func(ctx context.Context, path []any, value any) (any, []Issue) {
		out, issues := inner.run(ctx, path, value)
		if len(issues) > 0 {
			return out, issues
		}
		mapped, err := fn(out)
		if err != nil {
			return nil, []Issue{{Path: path, Code: CodeCustom, Message: err.Error(), Input: value}}
		}
		return mapped, nil
	}
	return newSchema(in)
}

// Preprocess maps the raw input through fn before validation by s.
func Preprocess(fn func(value any) any, s Schema) Schema {
	inner := s.Internals()
	in := &Internals{TypeName: inner.TypeName, Async: inner.Async, Optional: inner.Optional}
	in.run = func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value != Absent {
			value = fn(value)
		}
		return inner.run(ctx, path, value)
	}
	return newSchema(in)
}

func childPath(path []any, key any) []any {
	child := make([]any, 0, len(path)+1)
	child = append(child, path...)
	return append(child, key)
}
