package formvalidation_test

import (
	"testing"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/transform"
	"github.com/stretchr/testify/assert"
)

func TestApplyDataTransformations(t *testing.T) {
	data := v.FieldMapping{
		"email": " Bob@Example.COM ",
		"tags":  []any{" a ", "b "},
		"keep":  1,
	}
	snapshot := v.FieldMapping{
		"email": " Bob@Example.COM ",
		"tags":  []any{" a ", "b "},
		"keep":  1,
	}

	got := v.ApplyDataTransformations(data, map[string]v.Transformer{
		"email":   v.TransformFunc(transform.Multi(transform.TrimSpace, transform.ToLower)),
		"tags":    v.TransformFunc(transform.TrimSpace),
		"missing": v.TransformFunc(func(any) any { return "set" }),
		"nil":     nil,
	})

	assert.Equal(t, v.FieldMapping{
		"email": "bob@example.com",
		"tags":  []any{"a", "b"},
		"keep":  1,
	}, got)
	assert.Equal(t, snapshot, data)
}

func TestApplyDataTransformations_Nil(t *testing.T) {
	got := v.ApplyDataTransformations(nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
