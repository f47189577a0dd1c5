package zodix

import (
	"context"
	"fmt"

	"github.com/coji/zodix/schema"
	v2 "github.com/coji/zodix/schema/v2"
)

// Shape maps field names to classic validators. Passing a Shape to a Parse
// operation wraps it into an object validator requiring every field, with
// individually Optional fields exempted. Shape wrapping always normalizes
// through the classic engine; a caller who wants a v2-native object passes
// a pre-built v2.Object instead of a bare map.
type Shape map[string]schema.Type

// SafeResult is the uniform non-failing envelope of every Safe operation.
// On failure Error holds the engine-native error value, so the full issue
// list of whichever generation ran the parse stays available: either a
// *schema.ValidationError or a *v2.Error (or a classification/source
// fault that never reached an engine).
type SafeResult struct {
	Success bool
	Data    any
	Error   error
}

// resolved is the post-classification view of a schema argument: exactly
// one engine generation, probed once at the orchestrator boundary.
type resolved struct {
	gen    Generation
	legacy schema.Type
	modern v2.Schema
}

// resolveSchema classifies s and returns it bound to its generation,
// wrapping bare shapes through the classic engine's object constructor.
// Anything that is neither a validator nor a shape is a classification
// fault.
func resolveSchema(s any) (resolved, error) {
	switch ClassifyGeneration(s) {
	case GenerationModern:
		return resolved{gen: GenerationModern, modern: s.(v2.Schema)}, nil
	case GenerationLegacy:
		t, ok := s.(schema.Type)
		if !ok {
			return resolved{}, fmt.Errorf("%w: %T carries the classic marker but not its call surface", ErrUnsupportedSchema, s)
		}
		return resolved{gen: GenerationLegacy, legacy: t}, nil
	}

	switch shape := s.(type) {
	case Shape:
		return resolved{gen: GenerationLegacy, legacy: schema.Object(schema.Shape(shape))}, nil
	case map[string]schema.Type:
		return resolved{gen: GenerationLegacy, legacy: schema.Object(schema.Shape(shape))}, nil
	case schema.Shape:
		return resolved{gen: GenerationLegacy, legacy: schema.Object(shape)}, nil
	}
	return resolved{}, fmt.Errorf("%w, got %T", ErrUnsupportedSchema, s)
}

// The four dispatchers below are the only seam that knows both engines'
// call surfaces: classic validators parse through their own methods, v2
// schemas through the package-level entry points.

func (r resolved) parse(data any) (any, error) {
	if r.gen == GenerationModern {
		return v2.Parse(r.modern, data)
	}
	return r.legacy.Parse(data)
}

func (r resolved) parseAsync(ctx context.Context, data any) (any, error) {
	if r.gen == GenerationModern {
		return v2.ParseAsync(ctx, r.modern, data)
	}
	return r.legacy.ParseAsync(ctx, data)
}

func (r resolved) safeParse(data any) SafeResult {
	if r.gen == GenerationModern {
		return fromModern(v2.SafeParse(r.modern, data))
	}
	return fromLegacy(r.legacy.SafeParse(data))
}

func (r resolved) safeParseAsync(ctx context.Context, data any) SafeResult {
	if r.gen == GenerationModern {
		return fromModern(v2.SafeParseAsync(ctx, r.modern, data))
	}
	return fromLegacy(r.legacy.SafeParseAsync(ctx, data))
}

func fromLegacy(res schema.SafeParseResult) SafeResult {
	out := SafeResult{Success: res.Success, Data: res.Data}
	if res.Error != nil {
		out.Error = res.Error
	}
	return out
}

func fromModern(res v2.Result) SafeResult {
	out := SafeResult{Success: res.Success, Data: res.Data}
	if res.Error != nil {
		out.Error = res.Error
	}
	return out
}

// fault wraps a pre-engine failure (classification or source extraction)
// in the safe envelope, so Safe operations never surface it as anything
// but a result.
func fault(err error) SafeResult {
	return SafeResult{Success: false, Error: err}
}
