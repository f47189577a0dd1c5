// Package schema implements the classic validation engine generation.
//
// Validators built by this package are self-contained values: each one
// carries its own Parse, SafeParse, ParseAsync and SafeParseAsync entry
// points, plus a Def() accessor exposing the internal definition record.
// The Def marker is what identifies a value as a classic validator when
// it crosses package boundaries; callers that need to tell the two engine
// generations apart probe for it structurally instead of comparing types.
//
// Validators are immutable once constructed. The combinator methods
// (Optional, Refine, RefineAsync, Transform) return new validators that
// wrap the receiver; the receiver is never modified.
package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	// ErrAsyncType is returned by the synchronous entry points when the
	// validator tree contains an async refinement. Use ParseAsync instead.
	ErrAsyncType = errors.New("validator contains an async refinement, use ParseAsync")
)

///////////////////////////////////////////////////////////////////////////////
// Definition Record
///////////////////////////////////////////////////////////////////////////////

// Def is the internal definition record every classic validator carries.
// Its presence (via the Def() accessor) marks a value as belonging to this
// engine generation.
type Def struct {
	TypeName string
	Async    bool
	Optional bool
}

///////////////////////////////////////////////////////////////////////////////
// Absent Values
///////////////////////////////////////////////////////////////////////////////

type undefined struct{}

func (undefined) String() string { return "<undefined>" }

// Undefined stands in for an absent value. Object passes it to field
// validators whose key is missing from the input; non-optional validators
// reject it with a required issue, Optional validators let it through so
// the enclosing object can drop the key from its output.
var Undefined any = undefined{}

///////////////////////////////////////////////////////////////////////////////
// Type Interface
///////////////////////////////////////////////////////////////////////////////

// Type is a classic validator. The interface is sealed: only this package
// can construct implementations, which keeps the composition internals
// (path threading, issue accumulation) in one place.
type Type interface {
	// Parse validates data and returns the transformed value. It fails
	// with a *ValidationError, or with ErrAsyncType if the validator
	// contains an async refinement.
	Parse(data any) (any, error)
	// SafeParse is the non-failing variant of Parse. It never returns an
	// error through a second channel; failures are carried in the result.
	SafeParse(data any) SafeParseResult
	// ParseAsync validates data, running async refinements under ctx.
	ParseAsync(ctx context.Context, data any) (any, error)
	// SafeParseAsync is the non-failing variant of ParseAsync.
	SafeParseAsync(ctx context.Context, data any) SafeParseResult

	// Def returns the internal definition record. It is the generation
	// marker for this engine: any value exposing a non-nil Def is a
	// classic validator.
	Def() *Def

	// Optional returns a validator that accepts an absent value.
	Optional() Type
	// Refine returns a validator that additionally requires check to
	// hold on the parsed value.
	Refine(check func(value any) bool, message string) Type
	// RefineAsync is Refine for checks that need a context. The returned
	// validator is async: it must be parsed with ParseAsync.
	RefineAsync(check func(ctx context.Context, value any) (bool, error), message string) Type
	// Transform returns a validator that maps the parsed value through
	// fn. An error from fn becomes a custom issue at the value's path.
	Transform(fn func(value any) (any, error)) Type

	check(ctx context.Context, path []any, value any) (any, []Issue)
}

type checkFn func(ctx context.Context, path []any, value any) (any, []Issue)

type typeImpl struct {
	def *Def
	run checkFn
}

func newType(def *Def, run checkFn) *typeImpl {
	return &typeImpl{def: def, run: run}
}

func (t *typeImpl) Def() *Def { return t.def }

func (t *typeImpl) check(ctx context.Context, path []any, value any) (any, []Issue) {
	return t.run(ctx, path, value)
}

func (t *typeImpl) Parse(data any) (any, error) {
	if t.def.Async {
		return nil, ErrAsyncType
	}
	return t.parse(context.Background(), data)
}

func (t *typeImpl) ParseAsync(ctx context.Context, data any) (any, error) {
	return t.parse(ctx, data)
}

func (t *typeImpl) parse(ctx context.Context, data any) (any, error) {
	out, issues := t.run(ctx, nil, data)
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	if out == Undefined {
		out = nil
	}
	return out, nil
}

func (t *typeImpl) SafeParse(data any) SafeParseResult {
	if t.def.Async {
		return SafeParseResult{Error: &ValidationError{Issues: []Issue{
			{Code: CodeAsync, Message: ErrAsyncType.Error()},
		}}}
	}
	return t.safeParse(context.Background(), data)
}

func (t *typeImpl) SafeParseAsync(ctx context.Context, data any) SafeParseResult {
	return t.safeParse(ctx, data)
}

func (t *typeImpl) safeParse(ctx context.Context, data any) SafeParseResult {
	out, err := t.parse(ctx, data)
	if err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			verr = &ValidationError{Issues: []Issue{{Code: CodeCustom, Message: err.Error()}}}
		}
		return SafeParseResult{Error: verr}
	}
	return SafeParseResult{Success: true, Data: out}
}

///////////////////////////////////////////////////////////////////////////////
// Combinators
///////////////////////////////////////////////////////////////////////////////

func (t *typeImpl) Optional() Type {
	def := &Def{TypeName: t.def.TypeName, Async: t.def.Async, Optional: true}
	return newType(def, func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Undefined {
			return Undefined, nil
		}
		return t.run(ctx, path, value)
	})
}

func (t *typeImpl) Refine(check func(value any) bool, message string) Type {
	def := &Def{TypeName: t.def.TypeName, Async: t.def.Async, Optional: t.def.Optional}
	return newType(def, func(ctx context.Context, path []any, value any) (any, []Issue) {
		out, issues := t.run(ctx, path, value)
		if len(issues) > 0 || out == Undefined {
			return out, issues
		}
		if !check(out) {
			return nil, []Issue{newIssue(path, CodeCustom, message)}
		}
		return out, nil
	})
}

func (t *typeImpl) RefineAsync(check func(ctx context.Context, value any) (bool, error), message string) Type {
	def := &Def{TypeName: t.def.TypeName, Async: true, Optional: t.def.Optional}
	return newType(def, func(ctx context.Context, path []any, value any) (any, []Issue) {
		out, issues := t.run(ctx, path, value)
		if len(issues) > 0 || out == Undefined {
			return out, issues
		}
		ok, err := check(ctx, out)
		if err != nil {
			return nil, []Issue{newIssue(path, CodeCustom, err.Error())}
		}
		if !ok {
			return nil, []Issue{newIssue(path, CodeCustom, message)}
		}
		return out, nil
	})
}

func (t *typeImpl) Transform(fn func(value any) (any, error)) Type {
	def := &Def{TypeName: t.def.TypeName, Async: t.def.Async, Optional: t.def.Optional}
	return newType(def, func(ctx context.Context, path []any, value any) (any, []Issue) {
		out, issues := t.run(ctx, path, value)
		if len(issues) > 0 {
			return out, issues
		}
		mapped, err := fn(out)
		if err != nil {
			return nil, []Issue{newIssue(path, CodeCustom, err.Error())}
		}
		return mapped, nil
	})
}

// Preprocess maps the raw input value through fn before handing it to t.
// It is the hook for input-shape fixups that must happen ahead of
// validation, e.g. boxing a lone scalar into a single-element slice.
func Preprocess(fn func(value any) any, t Type) Type {
	inner := t.(*typeImpl)
	def := &Def{TypeName: inner.def.TypeName, Async: inner.def.Async, Optional: inner.def.Optional}
	return newType(def, func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value != Undefined {
			value = fn(value)
		}
		return inner.run(ctx, path, value)
	})
}

///////////////////////////////////////////////////////////////////////////////
// Object
///////////////////////////////////////////////////////////////////////////////

// Shape maps field names to their validators, prior to being wrapped into
// an object validator.
type Shape map[string]Type

// Object builds a composite validator over a map[string]any input. Every
// field in shape is required unless its validator is Optional. Keys in the
// input that do not appear in shape are stripped: they neither fail
// validation nor survive into the output.
func Object(shape Shape) Type {
	def := &Def{TypeName: "object"}
	fields := make(map[string]*typeImpl, len(shape))
	names := make([]string, 0, len(shape))
	for name, field := range shape {
		impl := field.(*typeImpl)
		fields[name] = impl
		names = append(names, name)
		if impl.def.Async {
			def.Async = true
		}
	}
	// Stable field order keeps issue lists deterministic.
	sort.Strings(names)

	return newType(def, func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Undefined || value == nil {
			return nil, []Issue{newIssue(path, CodeRequired, "required")}
		}
		m, ok := value.(map[string]any)
		if !ok {
			return nil, []Issue{newIssue(path, CodeInvalidType, fmt.Sprintf("expected object, got %T", value))}
		}

		out := make(map[string]any, len(fields))
		var issues []Issue
		for _, name := range names {
			fieldValue, present := m[name]
			if !present {
				fieldValue = Undefined
			}
			got, fieldIssues := fields[name].run(ctx, childPath(path, name), fieldValue)
			if len(fieldIssues) > 0 {
				issues = append(issues, fieldIssues...)
				continue
			}
			if got == Undefined {
				continue
			}
			out[name] = got
		}
		if len(issues) > 0 {
			return nil, issues
		}
		return out, nil
	})
}

// Array builds a validator over an ordered list. Both []string (the shape a
// normalized request record produces) and []any are accepted; the output is
// always []any. A lone scalar is not an array; box it with Preprocess if a
// field should accept both shapes.
func Array(elem Type) Type {
	inner := elem.(*typeImpl)
	def := &Def{TypeName: "array", Async: inner.def.Async}
	return newType(def, func(ctx context.Context, path []any, value any) (any, []Issue) {
		if value == Undefined || value == nil {
			return nil, []Issue{newIssue(path, CodeRequired, "required")}
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
			return nil, []Issue{newIssue(path, CodeInvalidType, fmt.Sprintf("expected array, got %T", value))}
		}

		out := make([]any, 0, len(items))
		var issues []Issue
		for i, item := range items {
			got, itemIssues := inner.run(ctx, childPath(path, i), item)
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
	})
}

func childPath(path []any, key any) []any {
	child := make([]any, 0, len(path)+1)
	child = append(child, path...)
	return append(child, key)
}
