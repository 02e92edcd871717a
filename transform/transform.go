package transform

import (
	"strings"
)

// TrimSpace runs [strings.TrimSpace] on a string value or on every string of a list.
func TrimSpace(v any) any {
	return stringFunc(v, strings.TrimSpace)
}

// ToLower runs [strings.ToLower] on a string value or on every string of a list.
func ToLower(v any) any {
	return stringFunc(v, strings.ToLower)
}

// ToUpper runs [strings.ToUpper] on a string value or on every string of a list.
func ToUpper(v any) any {
	return stringFunc(v, strings.ToUpper)
}

// StringFunc returns a transformation applying f to strings.
func StringFunc(f func(string) string) func(any) any {
	return func(v any) any {
		return stringFunc(v, f)
	}
}

// Multi runs all given transformations in order, feeding each the result of the previous one.
func Multi(fns ...func(any) any) func(any) any {
	return func(v any) any {
		for _, f := range fns {
			v = f(v)
		}
		return v
	}
}

// Split turns a string into a list of its sep separated, trimmed, non empty parts.
// Lists are returned unchanged.
func Split(sep string) func(any) any {
	return func(v any) any {
		s, ok := v.(string)
		if !ok {
			return v
		}
		var out []any
		for _, p := range strings.Split(s, sep) {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
}

// stringFunc never modifies a list in place; a new list is returned.
func stringFunc(v any, f func(string) string) any {
	switch t := v.(type) {
	case string:
		return f(t)
	case []string:
		out := make([]string, len(t))
		for i := range t {
			out[i] = f(t[i])
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = stringFunc(t[i], f)
		}
		return out
	}
	return v
}
