// Package v2 implements the second validation engine generation.
//
// The call surface is inverted relative to the classic engine: schemas are
// inert values, and parsing happens through the package-level entry points
// Parse, SafeParse, ParseAsync and SafeParseAsync. A schema identifies
// itself through its Internals() accessor, the generation marker for this
// engine; there is no per-schema method set beyond it.
//
// Composition is functional rather than method-chained: Optional, Refine,
// RefineAsync, Pipe and Preprocess are package functions taking and
// returning Schema values.
package v2

import (
	"context"
	"errors"
)

var (
	// ErrAsyncSchema is returned by Parse and SafeParse when the schema
	// tree contains an async refinement. Use the Async entry points.
	ErrAsyncSchema = errors.New("schema contains an async refinement, use ParseAsync")

	// ErrInvalidSchema is returned when a value carries the Internals
	// marker but was not built by this package's constructors.
	ErrInvalidSchema = errors.New("schema has no run function, it was not built by this engine")
)

// Internals is the definition record behind every schema of this engine
// generation. A value exposing a non-nil *Internals through Internals() is
// a v2 schema; nothing else is.
type Internals struct {
	TypeName string
	Async    bool
	Optional bool

	run func(ctx context.Context, path []any, value any) (any, []Issue)
}

// Schema is any value carrying v2 internals.
type Schema interface {
	Internals() *Internals
}

type schemaImpl struct {
	internals *Internals
}

func (s *schemaImpl) Internals() *Internals { return s.internals }

func newSchema(in *Internals) *schemaImpl { return &schemaImpl{internals: in} }

///////////////////////////////////////////////////////////////////////////////
// Entry Points
///////////////////////////////////////////////////////////////////////////////

// Parse validates data against s and returns the transformed value. It
// fails with a *Error, with ErrAsyncSchema when s requires the async path,
// or with ErrInvalidSchema when s carries no runnable internals.
func Parse(s Schema, data any) (any, error) {
	in := s.Internals()
	if in == nil || in.run == nil {
		return nil, ErrInvalidSchema
	}
	if in.Async {
		return nil, ErrAsyncSchema
	}
	return run(context.Background(), in, data)
}

// ParseAsync validates data against s, running async refinements under ctx.
func ParseAsync(ctx context.Context, s Schema, data any) (any, error) {
	in := s.Internals()
	if in == nil || in.run == nil {
		return nil, ErrInvalidSchema
	}
	return run(ctx, in, data)
}

// SafeParse is the non-failing variant of Parse.
func SafeParse(s Schema, data any) Result {
	out, err := Parse(s, data)
	return toResult(out, err)
}

// SafeParseAsync is the non-failing variant of ParseAsync.
func SafeParseAsync(ctx context.Context, s Schema, data any) Result {
	out, err := ParseAsync(ctx, s, data)
	return toResult(out, err)
}

func run(ctx context.Context, in *Internals, data any) (any, error) {
	out, issues := in.run(ctx, nil, data)
	if len(issues) > 0 {
		return nil, &Error{Issues: issues}
	}
	if out == Absent {
		out = nil
	}
	return out, nil
}

func toResult(out any, err error) Result {
	if err != nil {
		var verr *Error
		if !errors.As(err, &verr) {
			verr = &Error{Issues: []Issue{{Code: CodeCustom, Message: err.Error()}}}
		}
		return Result{Error: verr}
	}
	return Result{Success: true, Data: out}
}
