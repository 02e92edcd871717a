package formvalidation

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Path locates a value inside the validated data. Segments are field names
// (string) or list indexes (int).
type Path []any

// Append returns a copy of p extended by seg.
func (p Path) Append(seg any) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// String joins the segments with ".".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = fmt.Sprint(seg)
	}
	return strings.Join(parts, ".")
}

// Issue is a single validation failure.
type Issue struct {
	Path    Path   `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the outcome of [Schema.Parse]. When OK is true Value holds the
// coerced data and Issues is empty; otherwise Issues lists every failure in
// the order it was found.
type Result struct {
	OK     bool
	Value  FieldMapping
	Issues []Issue
}

func success(v FieldMapping) Result {
	return Result{OK: true, Value: v}
}

func failure(issues ...Issue) Result {
	return Result{Issues: issues}
}

// ValidationErrors is a map of dotted field paths to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation and implements
// the error interface with a JSON-friendly string representation.
type ValidationErrors = validation.Errors

// Err returns nil for a successful result, otherwise the issues as
// [ValidationErrors] keyed by dotted path. Later issues on the same path win.
func (r Result) Err() error {
	if r.OK || len(r.Issues) == 0 {
		return nil
	}
	errs := ValidationErrors{}
	for _, is := range r.Issues {
		errs[is.Path.String()] = validation.NewError(is.Code, is.Message)
	}
	return errs
}

func prefixIssues(prefix Path, issues []Issue) []Issue {
	out := make([]Issue, len(issues))
	for i, is := range issues {
		p := make(Path, 0, len(prefix)+len(is.Path))
		p = append(p, prefix...)
		out[i] = Issue{Path: append(p, is.Path...), Code: is.Code, Message: is.Message}
	}
	return out
}

// issuesFromError flattens an ozzo error into issues below path. Nested
// validation.Errors are walked in sorted key order; numeric keys, as
// produced by ozzo's Each, become int segments.
func issuesFromError(path Path, err error) []Issue {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if errors.As(err, &errs) {
		keys := make([]string, 0, len(errs))
		for k := range errs {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		var out []Issue
		for _, k := range keys {
			out = append(out, issuesFromError(path.Append(segment(k)), errs[k])...)
		}
		return out
	}
	var ve validation.Error
	if errors.As(err, &ve) {
		return []Issue{{Path: path, Code: ve.Code(), Message: ve.Error()}}
	}
	return []Issue{{Path: path, Code: CodeCustom, Message: err.Error()}}
}

func segment(k string) any {
	if i, err := strconv.Atoi(k); err == nil {
		return i
	}
	return k
}
