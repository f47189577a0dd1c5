package zodix

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedSchema       = errors.New("schema must be a classic validator, a v2 schema, or a Shape")
	ErrUnsupportedQuerySource  = errors.New("no query source extractor for this type")
	ErrUnsupportedFormSource   = errors.New("no form source extractor for this type")
	ErrUnsupportedJSONSource   = errors.New("no JSON source extractor for this type")
	ErrSourceAlreadyRegistered = errors.New("a source extractor for this type is already registered")
	ErrMalformedJSONBody       = errors.New("request body is not valid JSON")
)

// RequestError is the uniform failing-path error of every Parse operation.
// Its status and text are meant to surface directly as the HTTP response
// of the enclosing handler. It carries no field-level detail; use the Safe
// variant of the operation when the caller needs the issue list.
type RequestError struct {
	Status     int
	StatusText string
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.StatusText)
}

// NewRequestError builds a RequestError from the Message and Status
// overrides of the given options, falling back to 400 "Bad Request".
func NewRequestError(opts ...ParseOpts) *RequestError {
	opt := firstOpt(opts)
	err := &RequestError{
		Status:     DefaultErrorStatus,
		StatusText: DefaultErrorMessage,
	}
	if opt.Status != 0 {
		err.Status = opt.Status
	}
	if opt.Message != "" {
		err.StatusText = opt.Message
	}
	return err
}
