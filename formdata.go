package formvalidation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"slices"
	"strings"
)

// Blob is a binary attachment of a form, such as an uploaded file.
type Blob struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the length of the blob data in bytes.
func (b *Blob) Size() int {
	return len(b.Data)
}

// FormLike is a multi-valued container the extractor can read: every key may
// carry several values, in insertion order.
type FormLike interface {
	Keys() []string
	Values(key string) []any
}

// FormData is an ordered multi-valued form container. Values are strings or
// *Blob. The same key may be appended any number of times.
type FormData struct {
	keys   []string
	values map[string][]any
}

var _ FormLike = (*FormData)(nil)

// NewFormData returns an empty container.
func NewFormData() *FormData {
	return &FormData{values: map[string][]any{}}
}

func (f *FormData) add(key string, v any) {
	if f.values == nil {
		f.values = map[string][]any{}
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = append(f.values[key], v)
}

// Append adds value under key.
func (f *FormData) Append(key, value string) {
	f.add(key, value)
}

// AppendBlob adds a binary value under key.
func (f *FormData) AppendBlob(key string, b *Blob) {
	f.add(key, b)
}

// Keys returns the distinct keys in first insertion order. A nil FormData
// reads as empty.
func (f *FormData) Keys() []string {
	if f == nil {
		return nil
	}
	return slices.Clone(f.keys)
}

// Values returns every value stored under key.
func (f *FormData) Values(key string) []any {
	if f == nil {
		return nil
	}
	return slices.Clone(f.values[key])
}

// Get returns the first value stored under key, or nil.
func (f *FormData) Get(key string) any {
	if f == nil {
		return nil
	}
	if vs := f.values[key]; len(vs) > 0 {
		return vs[0]
	}
	return nil
}

// Has reports whether key holds at least one value.
func (f *FormData) Has(key string) bool {
	return f != nil && len(f.values[key]) > 0
}

// Len returns the number of distinct keys.
func (f *FormData) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// FromURLValues copies vs into a FormData. url.Values is unordered, so keys
// are added in sorted order.
func FromURLValues(vs url.Values) *FormData {
	fd := NewFormData()
	keys := make([]string, 0, len(vs))
	for k := range vs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		for _, v := range vs[k] {
			fd.Append(k, v)
		}
	}
	return fd
}

// FromMultipartForm copies a parsed multipart form, reading every file part
// into a Blob. Text fields come first, then files, each in sorted key order.
func FromMultipartForm(form *multipart.Form) (*FormData, error) {
	fd := FromURLValues(url.Values(form.Value))
	keys := make([]string, 0, len(form.File))
	for k := range form.File {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		for _, fh := range form.File[k] {
			b, err := readFileHeader(fh)
			if err != nil {
				return nil, fmt.Errorf("read form file %q: %w", k, err)
			}
			fd.AppendBlob(k, b)
		}
	}
	return fd, nil
}

func readFileHeader(fh *multipart.FileHeader) (*Blob, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &Blob{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// WriteMultipart writes every value as a multipart/form-data part, in order.
// Blobs without a filename are written as "blob", the name browsers use.
func (f *FormData) WriteMultipart(w *multipart.Writer) error {
	if f == nil {
		return nil
	}
	for _, k := range f.keys {
		for _, v := range f.values[k] {
			switch val := v.(type) {
			case *Blob:
				name := val.Filename
				if name == "" {
					name = "blob"
				}
				ct := val.ContentType
				if ct == "" {
					ct = "application/octet-stream"
				}
				h := make(textproto.MIMEHeader)
				h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
					quoteEscaper.Replace(k), quoteEscaper.Replace(name)))
				h.Set("Content-Type", ct)
				part, err := w.CreatePart(h)
				if err != nil {
					return err
				}
				if _, err := part.Write(val.Data); err != nil {
					return err
				}
			default:
				if err := w.WriteField(k, fmt.Sprint(val)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
