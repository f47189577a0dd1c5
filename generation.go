package zodix

import (
	"github.com/coji/zodix/schema"
	v2 "github.com/coji/zodix/schema/v2"
)

// Generation tags which validation engine produced a schema value. A
// schema belongs to exactly one generation for its whole lifetime;
// composites built by combining validators of one generation stay in that
// generation.
type Generation int

const (
	// GenerationNeither means the value is not a pre-built validator of
	// either engine. It may still be a Shape awaiting wrapping.
	GenerationNeither Generation = iota
	GenerationLegacy
	GenerationModern
)

func (g Generation) String() string {
	switch g {
	case GenerationLegacy:
		return "legacy"
	case GenerationModern:
		return "modern"
	default:
		return "neither"
	}
}

// ClassifyGeneration inspects a schema-like value and reports which engine
// generation built it. The probe is structural: it asks whether the value
// exposes the generation's internal marker accessor with a non-nil result,
// never whether it is a particular concrete type, so validator values that
// crossed package boundaries still classify correctly. The modern marker
// wins when a value somehow carries both.
func ClassifyGeneration(value any) Generation {
	if value == nil {
		return GenerationNeither
	}
	if s, ok := value.(interface{ Internals() *v2.Internals }); ok && s.Internals() != nil {
		return GenerationModern
	}
	if t, ok := value.(interface{ Def() *schema.Def }); ok && t.Def() != nil {
		return GenerationLegacy
	}
	return GenerationNeither
}

// IsSchema reports whether the value is a pre-built validator of either
// engine generation. A bare Shape is not a validator until wrapped.
func IsSchema(value any) bool {
	return ClassifyGeneration(value) != GenerationNeither
}
