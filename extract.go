package formvalidation

import (
	"fmt"
	"net/url"
	"slices"

	"github.com/goccy/go-json"
)

// ExtractOptions filters and renames fields during extraction.
type ExtractOptions struct {
	// KeyTransforms renames fields: original name to new name.
	KeyTransforms map[string]string
	// ExcludeFields are always dropped, even when listed in IncludeFields.
	ExcludeFields []string
	// IncludeFields, when not empty, is an allow-list of original names.
	IncludeFields []string
}

// keep reports whether the field with original name key survives filtering.
func (o *ExtractOptions) keep(key string) bool {
	if o == nil {
		return true
	}
	if len(o.IncludeFields) > 0 && !slices.Contains(o.IncludeFields, key) {
		return false
	}
	return !slices.Contains(o.ExcludeFields, key)
}

func (o *ExtractOptions) rename(key string) string {
	if o == nil {
		return key
	}
	if to, ok := o.KeyTransforms[key]; ok {
		return to
	}
	return key
}

// ExtractFormData returns a new mapping of the fields of source. source may
// be a [FormLike] container, url.Values or a string keyed map.
//
// From multi-valued containers a key with one value yields that value and a
// key with several yields a []any in insertion order. Maps are copied as
// given. Filters are checked against the original key, then the key is
// renamed. source is never modified. Unsupported sources yield an empty
// mapping.
func ExtractFormData(source any, opts *ExtractOptions) FieldMapping {
	out := FieldMapping{}
	switch src := source.(type) {
	case FormLike:
		extractForm(out, src, opts)
	case url.Values:
		extractForm(out, FromURLValues(src), opts)
	case map[string][]string:
		extractForm(out, FromURLValues(src), opts)
	default:
		m, ok := asMapping(source)
		if !ok {
			return out
		}
		for k, v := range m {
			if opts.keep(k) {
				out[opts.rename(k)] = v
			}
		}
	}
	return out
}

func extractForm(out FieldMapping, src FormLike, opts *ExtractOptions) {
	for _, k := range src.Keys() {
		if !opts.keep(k) {
			continue
		}
		vs := src.Values(k)
		switch len(vs) {
		case 0:
			continue
		case 1:
			out[opts.rename(k)] = vs[0]
		default:
			out[opts.rename(k)] = vs
		}
	}
}

// ExtractJSON decodes a JSON object and extracts it like a plain mapping.
func ExtractJSON(b []byte, opts *ExtractOptions) (FieldMapping, error) {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode form json: %w", err)
	}
	return ExtractFormData(m, opts), nil
}
