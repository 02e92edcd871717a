// Package transform provides value transformations for form fields. Each
// function takes a field value and returns a new one; strings inside lists
// are transformed element by element and other values are returned as is.
// Wrap them with formvalidation.TransformFunc to use them as transformers.
package transform
