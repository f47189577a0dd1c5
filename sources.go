package zodix

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"
)

///////////////////////////////////////////////////////////////////////////////
// Source Registries
///////////////////////////////////////////////////////////////////////////////

// QuerySource extracts query-string values from a caller-supplied source
// value. Register one to let ParseQuery accept additional source types.
type QuerySource func(src any) (url.Values, error)

// FormSource extracts a submitted form from a caller-supplied source
// value. Register one to let ParseForm accept additional source types.
type FormSource func(ctx context.Context, src any) (*multipart.Form, error)

// Custom extractors are looked up by the source's reflect.Type after the
// built-ins, mirroring a parser-registry keyed by source type.
var (
	sourcesMu             sync.RWMutex
	registeredQuerySource = make(map[reflect.Type]QuerySource)
	registeredFormSource  = make(map[reflect.Type]FormSource)

	builtinQueryTypes = map[reflect.Type]bool{
		HTTPRequestType: true,
		URLValuesType:   true,
		URLType:         true,
		StringType:      true,
	}
	builtinFormTypes = map[reflect.Type]bool{
		HTTPRequestType:   true,
		URLValuesType:     true,
		MultipartFormType: true,
	}
)

// RegisterQuerySource registers a query extractor for sources of type t.
// The built-in source types cannot be re-registered.
func RegisterQuerySource(t reflect.Type, fn QuerySource) error {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()
	if builtinQueryTypes[t] {
		return ErrSourceAlreadyRegistered
	}
	if _, exists := registeredQuerySource[t]; exists {
		return ErrSourceAlreadyRegistered
	}
	registeredQuerySource[t] = fn
	return nil
}

// RegisterFormSource registers a form extractor for sources of type t.
// The built-in source types cannot be re-registered.
func RegisterFormSource(t reflect.Type, fn FormSource) error {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()
	if builtinFormTypes[t] {
		return ErrSourceAlreadyRegistered
	}
	if _, exists := registeredFormSource[t]; exists {
		return ErrSourceAlreadyRegistered
	}
	registeredFormSource[t] = fn
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// Query Extraction
///////////////////////////////////////////////////////////////////////////////

func queryValuesFrom(src any) (url.Values, error) {
	switch s := src.(type) {
	case *http.Request:
		return s.URL.Query(), nil
	case url.Values:
		return s, nil
	case *url.URL:
		return s.Query(), nil
	case string:
		values, err := url.ParseQuery(strings.TrimPrefix(s, "?"))
		if err != nil {
			return nil, fmt.Errorf("malformed query string: %w", err)
		}
		return values, nil
	}

	sourcesMu.RLock()
	fn, exists := registeredQuerySource[reflect.TypeOf(src)]
	sourcesMu.RUnlock()
	if exists {
		return fn(src)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedQuerySource, src)
}

///////////////////////////////////////////////////////////////////////////////
// Form Extraction
///////////////////////////////////////////////////////////////////////////////

func formFrom(ctx context.Context, src any) (*multipart.Form, error) {
	switch s := src.(type) {
	case *multipart.Form:
		return s, nil
	case url.Values:
		return &multipart.Form{Value: s}, nil
	case *http.Request:
		return formFromRequest(ctx, s)
	}

	sourcesMu.RLock()
	fn, exists := registeredFormSource[reflect.TypeOf(src)]
	sourcesMu.RUnlock()
	if exists {
		return fn(ctx, src)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedFormSource, src)
}

// formFromRequest materializes the request's form body. The body is read
// exactly once and then restored on the request, so a handler that still
// needs the raw body after validation can read it again.
func formFromRequest(ctx context.Context, r *http.Request) (*multipart.Form, error) {
	body, err := readBody(ctx, r)
	if err != nil {
		return nil, err
	}

	mediaType := ""
	params := map[string]string{}
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, params, err = mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("malformed Content-Type: %w", err)
		}
	}

	switch mediaType {
	case ContentTypeMultipartForm:
		boundary, ok := params["boundary"]
		if !ok {
			return nil, fmt.Errorf("multipart form without boundary")
		}
		form, err := multipart.NewReader(bytes.NewReader(body), boundary).ReadForm(defaultMaxFormMemory)
		if err != nil {
			return nil, fmt.Errorf("failed to read multipart form: %w", err)
		}
		return form, nil
	default:
		// Urlencoded, or a GET-style request without a form body. An
		// empty body yields an empty form, which validation then
		// reports field by field.
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("malformed form body: %w", err)
		}
		return &multipart.Form{Value: values}, nil
	}
}

// readBody drains the request body and puts an equivalent reader back, the
// single body consumption this package performs.
func readBody(ctx context.Context, r *http.Request) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
