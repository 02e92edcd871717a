package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringFuncs(t *testing.T) {
	tests := []struct {
		name string
		f    func(any) any
		in   any
		want any
	}{
		{"trim string", TrimSpace, "  a ", "a"},
		{"trim string slice", TrimSpace, []string{" a", "b "}, []string{"a", "b"}},
		{"trim mixed list", TrimSpace, []any{" a", 1, []any{" b "}}, []any{"a", 1, []any{"b"}}},
		{"lower", ToLower, "AbC", "abc"},
		{"upper", ToUpper, "AbC", "ABC"},
		{"non string", ToUpper, 42, 42},
		{"nil", TrimSpace, nil, nil},
		{"custom", StringFunc(func(s string) string { return s + "!" }), "hi", "hi!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f(tt.in))
		})
	}
}

func TestStringFunc_NewSlice(t *testing.T) {
	in := []string{" a "}
	out := TrimSpace(in).([]string)
	assert.Equal(t, []string{"a"}, out)
	assert.Equal(t, []string{" a "}, in)

	list := []any{" b "}
	_ = TrimSpace(list)
	assert.Equal(t, []any{" b "}, list)
}

func TestMulti(t *testing.T) {
	f := Multi(TrimSpace, ToUpper, StringFunc(func(s string) string { return "<" + s + ">" }))
	assert.Equal(t, "<AB>", f(" ab "))
	assert.Equal(t, "x", Multi()("x"))
}

func TestSplit(t *testing.T) {
	split := Split(",")
	assert.Equal(t, []any{"a", "b", "c"}, split("a, b,,c ,"))
	assert.Nil(t, split(" , "))
	assert.Equal(t, []any{"x"}, split([]any{"x"}))
}
