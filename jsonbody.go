package zodix

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// ParseJSON validates a JSON request body against the given schema and
// returns the parsed value. The source may be an *http.Request (body read
// once and restored), []byte, or string. Unlike the form and query
// operations there is no string coercion step: the decoded JSON value
// types flow into validation directly, so schemas use the plain Number,
// Int and Bool validators rather than the *AsString coercions.
//
// On any failure the call returns a *RequestError built from opts.
func ParseJSON(ctx context.Context, src any, s any, opts ...ParseOpts) (any, error) {
	r, value, err := resolveJSON(ctx, src, s)
	if err != nil {
		return nil, NewRequestError(opts...)
	}
	out, err := r.parseAsync(ctx, value)
	if err != nil {
		return nil, NewRequestError(opts...)
	}
	return out, nil
}

// ParseJSONSafe is the non-failing variant of ParseJSON.
func ParseJSONSafe(ctx context.Context, src any, s any, opts ...ParseOpts) SafeResult {
	r, value, err := resolveJSON(ctx, src, s)
	if err != nil {
		return fault(err)
	}
	return r.safeParseAsync(ctx, value)
}

func resolveJSON(ctx context.Context, src any, s any) (resolved, any, error) {
	r, err := resolveSchema(s)
	if err != nil {
		return resolved{}, nil, err
	}
	value, err := jsonValueFrom(ctx, src)
	if err != nil {
		return resolved{}, nil, err
	}
	return r, value, nil
}

func jsonValueFrom(ctx context.Context, src any) (any, error) {
	var body []byte
	switch s := src.(type) {
	case *http.Request:
		var err error
		body, err = readBody(ctx, s)
		if err != nil {
			return nil, err
		}
	case []byte:
		body = s
	case string:
		body = []byte(s)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedJSONSource, src)
	}

	if len(body) == 0 {
		// An absent body validates like an empty object: every missing
		// field is reported individually.
		return map[string]any{}, nil
	}
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedJSONBody
	}
	return gjson.ParseBytes(body).Value(), nil
}
