package formvalidation

import (
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/asaskevich/govalidator"
)

// ISOTimeLayout is how dates are written into encoded forms: UTC with
// millisecond precision, e.g. 2024-05-01T09:30:00.000Z.
const ISOTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// ConvertToFormData encodes data into a new [FormData]. Nested mappings
// become parent[child] keys and nested lists parent[index] keys; a list of
// scalars repeats its own key once per element, rebuilding a multi-valued
// field. Top-level and nested keys are encoded in sorted order.
func ConvertToFormData(data FieldMapping) *FormData {
	fd := NewFormData()
	for _, k := range sortedKeys(reflect.ValueOf(data)) {
		encodeValue(fd, k, data[k])
	}
	return fd
}

func sortedKeys(m reflect.Value) []string {
	keys := make([]string, 0, m.Len())
	for _, k := range m.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	return keys
}

// encodeScalar appends nil, blobs, dates and primitives. It reports false
// for values that need recursion.
func encodeScalar(fd *FormData, key string, v any) bool {
	switch t := v.(type) {
	case nil:
		fd.Append(key, "")
	case *Blob:
		if t == nil {
			fd.Append(key, "")
		} else {
			fd.AppendBlob(key, t)
		}
	case Blob:
		fd.AppendBlob(key, &t)
	case []byte:
		fd.AppendBlob(key, &Blob{Data: t})
	case time.Time:
		fd.Append(key, t.UTC().Format(ISOTimeLayout))
	case *time.Time:
		if t == nil {
			fd.Append(key, "")
		} else {
			fd.Append(key, t.UTC().Format(ISOTimeLayout))
		}
	default:
		if isComposite(reflect.ValueOf(v)) {
			return false
		}
		fd.Append(key, govalidator.ToString(v))
	}
	return true
}

func isComposite(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	}
	return false
}

func encodeValue(fd *FormData, key string, v any) {
	if encodeScalar(fd, key, v) {
		return
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		for _, ck := range sortedKeys(rv) {
			encodeValue(fd, key+"["+ck+"]", rv.MapIndex(reflect.ValueOf(ck).Convert(rv.Type().Key())).Interface())
		}
		return
	}
	for i := range rv.Len() {
		elem := rv.Index(i).Interface()
		if isComposite(reflect.ValueOf(elem)) {
			if _, isBytes := elem.([]byte); !isBytes {
				encodeValue(fd, key+"["+strconv.Itoa(i)+"]", elem)
				continue
			}
		}
		encodeScalar(fd, key, elem)
	}
}
