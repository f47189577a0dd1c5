package zodix

import (
	"mime/multipart"
	"net/url"
)

// ParseOpts configures a single Parse call. The zero value means: default
// status and message on failure, default normalization.
//
// Message/Status and the parser overrides are independent axes: the parser
// runs during normalization on every call, the message and status are only
// consulted when a failing-variant call fails.
type ParseOpts struct {
	// Message overrides the RequestError text on failure.
	Message string
	// Status overrides the RequestError status code on failure.
	Status int

	// Parser replaces NormalizeValues for query-style sources. When set
	// it is called instead of the default, with no further processing of
	// its output.
	Parser func(values url.Values) Record
	// FormParser replaces NormalizeForm for form sources, under the same
	// full-replacement contract.
	FormParser func(form *multipart.Form) Record
}

func firstOpt(opts []ParseOpts) ParseOpts {
	if len(opts) > 0 {
		return opts[0]
	}
	return ParseOpts{}
}
