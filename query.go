package zodix

// ParseQuery validates a query-string source against the given schema and
// returns the parsed value. The source may be an *http.Request, url.Values,
// a *url.URL, a raw query string, or any type with a registered
// QuerySource. On any failure the call returns a *RequestError built from
// opts. The request body is never touched.
func ParseQuery(src any, s any, opts ...ParseOpts) (any, error) {
	r, data, err := resolveQuery(src, s, firstOpt(opts))
	if err != nil {
		return nil, NewRequestError(opts...)
	}
	out, err := r.parse(data)
	if err != nil {
		return nil, NewRequestError(opts...)
	}
	return out, nil
}

// ParseQuerySafe is the non-failing variant of ParseQuery. The result
// keeps the engine-native error with its full issue list; extraction and
// classification faults surface through the result as well.
func ParseQuerySafe(src any, s any, opts ...ParseOpts) SafeResult {
	r, data, err := resolveQuery(src, s, firstOpt(opts))
	if err != nil {
		return fault(err)
	}
	return r.safeParse(data)
}

func resolveQuery(src any, s any, opt ParseOpts) (resolved, map[string]any, error) {
	r, err := resolveSchema(s)
	if err != nil {
		return resolved{}, nil, err
	}
	values, err := queryValuesFrom(src)
	if err != nil {
		return resolved{}, nil, err
	}

	var rec Record
	if opt.Parser != nil {
		rec = opt.Parser(values)
	} else {
		rec = NormalizeValues(values)
	}
	return r, rec.asMap(), nil
}
