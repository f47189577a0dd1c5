package zodix

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode projects a validated parse result onto a typed struct, matching
// fields by their json tag (falling back to the field name). It gives
// callers a typed exit from the map[string]any the engines produce:
//
//	out, err := zodix.ParseForm(ctx, r, loginSchema)
//	if err != nil { ... }
//	login, err := zodix.Decode[LoginForm](out)
func Decode[T any](value any) (T, error) {
	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &out,
		TagName: "json",
	})
	if err != nil {
		return out, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(value); err != nil {
		return out, fmt.Errorf("failed to decode parse result: %w", err)
	}
	return out, nil
}
