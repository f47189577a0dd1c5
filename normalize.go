package zodix

import (
	"mime/multipart"
	"net/url"
)

// Record is a normalized request source, ready for validation. Values are
// either a single string or an ordered []string; a key maps to a list if
// and only if it occurred more than once in the source. No key is ever a
// single-element list, and keys absent from the source are absent from the
// Record. Schemas are written against exactly this rule.
type Record map[string]any

// NormalizeValues collapses a multi-valued source into a Record under the
// promote-to-list-on-second-occurrence rule. The relative order of a
// repeated key's values is preserved.
func NormalizeValues(values url.Values) Record {
	rec := make(Record, len(values))
	for key, vs := range values {
		switch len(vs) {
		case 0:
			// A key with no values never occurred.
		case 1:
			rec[key] = vs[0]
		default:
			rec[key] = append([]string(nil), vs...)
		}
	}
	return rec
}

// NormalizeForm collapses a submitted form into a Record under the same
// promotion rule, over the union of its value entries and file entries.
// File entries never survive as payloads: each contributes its declared
// filename string in place of the binary value.
func NormalizeForm(form *multipart.Form) Record {
	merged := make(url.Values, len(form.Value)+len(form.File))
	for key, vs := range form.Value {
		merged[key] = append(merged[key], vs...)
	}
	for key, headers := range form.File {
		for _, header := range headers {
			merged[key] = append(merged[key], header.Filename)
		}
	}
	return NormalizeValues(merged)
}

// asMap converts a Record for the engines, which validate plain
// map[string]any input.
func (r Record) asMap() map[string]any {
	return map[string]any(r)
}
