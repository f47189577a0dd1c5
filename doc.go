// Package zodix parses and validates already-serialized request data:
// route parameters, query strings, and submitted form fields.
//
// It removes the repetitive extraction/validation boilerplate from HTTP
// handlers: you hand an operation the raw source (a params map, an
// *http.Request, url.Values, a *multipart.Form) together with a schema
// description, and get back either the coerced, validated value or a
// uniform 400-class RequestError.
//
// The package provides four source families, each with a failing and a
// non-failing ("safe") variant:
//   - ParseParams / ParseParamsSafe: route parameters (scalar-only maps,
//     e.g. chi route params via RouteParams)
//   - ParseQuery / ParseQuerySafe: query strings
//   - ParseForm / ParseFormSafe: urlencoded and multipart form bodies
//   - ParseJSON / ParseJSONSafe: JSON request bodies
//
// Schemas come from either of two engine generations:
//   - the classic engine (package schema): validators carry their own
//     Parse/SafeParse methods and a Def() marker
//   - the v2 engine (package schema/v2): schemas are inert values parsed
//     through package-level entry points, marked by Internals()
//
// Callers never need to know which generation a schema belongs to. The
// compatibility layer classifies the value structurally by probing for the
// generation markers and dispatches to the right entry points. A bare
// Shape (a map of field name to classic validator) is wrapped into an
// object validator automatically.
//
// Multi-valued sources are normalized before validation: a key that occurs
// exactly once becomes a scalar string, a key that repeats becomes an
// ordered []string, and form file entries are replaced by their declared
// filename. Schemas are written against exactly this rule; a field that
// may repeat should use Repeatable (or declare an Array and always send
// the key more than once).
//
// The stringly-typed coercion helpers (BoolAsString, CheckboxAsString,
// IntAsString, NumAsString, UUIDAsString, TimeAsString) exist in both
// generations and turn normalized string values into typed ones.
package zodix
