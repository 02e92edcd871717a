package formvalidation

import "strings"

// FieldError is one issue keyed by its dotted path.
type FieldError struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// FormatErrorsAsMap maps each dotted issue path to its message. When several
// issues share a path the last one wins. A successful result gives an empty map.
func FormatErrorsAsMap(r Result) map[string]string {
	out := map[string]string{}
	if r.OK {
		return out
	}
	for _, is := range r.Issues {
		out[is.Path.String()] = is.Message
	}
	return out
}

// FormatErrorsAsArray lists every issue in reported order.
func FormatErrorsAsArray(r Result) []FieldError {
	out := []FieldError{}
	if r.OK {
		return out
	}
	for _, is := range r.Issues {
		out = append(out, FieldError{Key: is.Path.String(), Message: is.Message})
	}
	return out
}

// FormatErrorsAsString joins every issue message with newlines.
func FormatErrorsAsString(r Result) string {
	if r.OK {
		return ""
	}
	msgs := make([]string, len(r.Issues))
	for i, is := range r.Issues {
		msgs[i] = is.Message
	}
	return strings.Join(msgs, "\n")
}
