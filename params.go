package zodix

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ParseParams validates route parameters against the given schema and
// returns the parsed value. Params are scalar-only and are validated
// as-is; fields are never renamed or remapped. On any failure the call
// returns a *RequestError built from opts.
func ParseParams(params map[string]string, s any, opts ...ParseOpts) (any, error) {
	r, data, err := resolveParams(params, s)
	if err != nil {
		return nil, NewRequestError(opts...)
	}
	out, err := r.parse(data)
	if err != nil {
		return nil, NewRequestError(opts...)
	}
	return out, nil
}

// ParseParamsSafe is the non-failing variant of ParseParams. The result
// keeps the engine-native error with its full issue list.
func ParseParamsSafe(params map[string]string, s any) SafeResult {
	r, data, err := resolveParams(params, s)
	if err != nil {
		return fault(err)
	}
	return r.safeParse(data)
}

func resolveParams(params map[string]string, s any) (resolved, map[string]any, error) {
	r, err := resolveSchema(s)
	if err != nil {
		return resolved{}, nil, err
	}
	rec := make(Record, len(params))
	for key, value := range params {
		rec[key] = value
	}
	return r, rec.asMap(), nil
}

// RouteParams extracts chi route parameters from a request as the input
// for ParseParams. Requests routed outside chi yield an empty map.
func RouteParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return map[string]string{}
	}
	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}
