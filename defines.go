package zodix

import (
	"mime/multipart"
	"net/http"
	"net/url"
	"reflect"
)

// Defaults for the failing-path RequestError.
const (
	DefaultErrorStatus  = http.StatusBadRequest
	DefaultErrorMessage = "Bad Request"
)

// Mime Type constants for content types and encodings.
const (
	ContentTypeApplicationJSON = "application/json"
	ContentTypeFormURLEncoded  = "application/x-www-form-urlencoded"
	ContentTypeMultipartForm   = "multipart/form-data"
)

// Upper bound on the memory used for a multipart form before spilling to
// disk, mirroring the net/http default.
const defaultMaxFormMemory = 32 << 20

// reflect.TypeOf constants for source-registry type checks
var (
	HTTPRequestType   = reflect.TypeOf((*http.Request)(nil))
	URLValuesType     = reflect.TypeOf(url.Values{})
	URLType           = reflect.TypeOf((*url.URL)(nil))
	StringType        = reflect.TypeOf("")
	MultipartFormType = reflect.TypeOf((*multipart.Form)(nil))
)
