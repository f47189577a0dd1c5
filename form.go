package zodix

import "context"

// ParseForm validates a submitted form against the given schema and
// returns the parsed value. The source may be an *http.Request (multipart
// or urlencoded body), a *multipart.Form, url.Values, or any type with a
// registered FormSource. On any failure the call returns a *RequestError
// built from opts.
//
// Form validation always runs through the engines' async entry points,
// since form-level refinements may themselves be async. When the source is
// a request, its body is read once and restored afterwards, so the caller
// can still consume it.
func ParseForm(ctx context.Context, src any, s any, opts ...ParseOpts) (any, error) {
	r, data, err := resolveForm(ctx, src, s, firstOpt(opts))
	if err != nil {
		return nil, NewRequestError(opts...)
	}
	out, err := r.parseAsync(ctx, data)
	if err != nil {
		return nil, NewRequestError(opts...)
	}
	return out, nil
}

// ParseFormSafe is the non-failing variant of ParseForm. The result keeps
// the engine-native error with its full issue list; extraction and
// classification faults surface through the result as well.
func ParseFormSafe(ctx context.Context, src any, s any, opts ...ParseOpts) SafeResult {
	r, data, err := resolveForm(ctx, src, s, firstOpt(opts))
	if err != nil {
		return fault(err)
	}
	return r.safeParseAsync(ctx, data)
}

func resolveForm(ctx context.Context, src any, s any, opt ParseOpts) (resolved, map[string]any, error) {
	r, err := resolveSchema(s)
	if err != nil {
		return resolved{}, nil, err
	}
	form, err := formFrom(ctx, src)
	if err != nil {
		return resolved{}, nil, err
	}

	var rec Record
	if opt.FormParser != nil {
		rec = opt.FormParser(form)
	} else {
		rec = NormalizeForm(form)
	}
	return r, rec.asMap(), nil
}
