package formvalidation_test

import (
	"testing"
	"time"

	v "github.com/Gobd/formvalidation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formEntries(fd *v.FormData) map[string][]any {
	out := map[string][]any{}
	for _, k := range fd.Keys() {
		out[k] = fd.Values(k)
	}
	return out
}

func TestConvertToFormData_Scalars(t *testing.T) {
	when := time.Date(2024, 5, 1, 11, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
	fd := v.ConvertToFormData(v.FieldMapping{
		"s":    "text",
		"n":    12,
		"f":    1.5,
		"b":    true,
		"nil":  nil,
		"when": when,
	})
	assert.Equal(t, map[string][]any{
		"s":    {"text"},
		"n":    {"12"},
		"f":    {"1.5"},
		"b":    {"true"},
		"nil":  {""},
		"when": {"2024-05-01T09:30:00.000Z"},
	}, formEntries(fd))
	assert.Equal(t, []string{"b", "f", "n", "nil", "s", "when"}, fd.Keys())
}

func TestConvertToFormData_Blob(t *testing.T) {
	b := &v.Blob{Filename: "a.png", Data: []byte{1}}
	fd := v.ConvertToFormData(v.FieldMapping{"file": b, "raw": []byte("hi")})

	assert.Same(t, b, fd.Get("file"))
	raw, ok := fd.Get("raw").(*v.Blob)
	require.True(t, ok)
	assert.Equal(t, []byte("hi"), raw.Data)
}

func TestConvertToFormData_Nested(t *testing.T) {
	fd := v.ConvertToFormData(v.FieldMapping{
		"user": map[string]any{
			"name":    "Bob",
			"address": map[string]any{"city": "Oslo"},
		},
		"tags": []any{"a", "b"},
		"rows": []any{
			map[string]any{"id": 1},
			[]any{"x", "y"},
		},
	})
	assert.Equal(t, map[string][]any{
		"user[name]":          {"Bob"},
		"user[address][city]": {"Oslo"},
		"tags":                {"a", "b"},
		"rows[0][id]":         {"1"},
		"rows[1]":             {"x", "y"},
	}, formEntries(fd))
}

func TestConvertToFormData_RoundTrip(t *testing.T) {
	in := v.FieldMapping{
		"name":   "Bob",
		"age":    41,
		"active": false,
		"tags":   []any{"go", "forms"},
		"meta":   map[string]any{"source": "web"},
	}
	got := v.ExtractFormData(v.ConvertToFormData(in), nil)
	assert.Equal(t, v.FieldMapping{
		"name":         "Bob",
		"age":          "41",
		"active":       "false",
		"tags":         []any{"go", "forms"},
		"meta[source]": "web",
	}, got)
}
