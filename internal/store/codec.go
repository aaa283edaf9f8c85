package store

import (
	"fmt"
	"time"
)

// DocReader decodes typed fields from a Doc, remembering the first error.
type DocReader struct {
	doc Doc
	err error
}

// NewDocReader returns a reader over doc.
func NewDocReader(doc Doc) *DocReader {
	return &DocReader{doc: doc}
}

// Err returns the first decoding error, if any.
func (r *DocReader) Err() error { return r.err }

func (r *DocReader) fail(field string, v any, want string) {
	if r.err == nil {
		r.err = fmt.Errorf("store: field %q: cannot decode %T as %s", field, v, want)
	}
}

// Int64 reads an integer field. A missing field reads as zero.
func (r *DocReader) Int64(field string) int64 {
	v, ok := r.doc[field]
	if !ok || v == nil {
		return 0
	}
	n, ok := toInt64(v)
	if !ok {
		r.fail(field, v, "integer")
		return 0
	}
	return n
}

// Int reads an integer field as int.
func (r *DocReader) Int(field string) int {
	return int(r.Int64(field))
}

// String reads a string field. Nil reads as "".
func (r *DocReader) String(field string) string {
	switch s := r.doc[field].(type) {
	case nil:
		return ""
	case string:
		return s
	case *string:
		if s == nil {
			return ""
		}
		return *s
	default:
		r.fail(field, s, "string")
		return ""
	}
}

// StringPtr reads an optional string field.
func (r *DocReader) StringPtr(field string) *string {
	switch s := r.doc[field].(type) {
	case nil:
		return nil
	case string:
		return &s
	case *string:
		if s == nil {
			return nil
		}
		v := *s
		return &v
	default:
		r.fail(field, s, "string")
		return nil
	}
}

// Bool reads a boolean field.
func (r *DocReader) Bool(field string) bool {
	switch b := r.doc[field].(type) {
	case nil:
		return false
	case bool:
		return b
	default:
		r.fail(field, b, "bool")
		return false
	}
}

// Time reads a timestamp field.
func (r *DocReader) Time(field string) time.Time {
	switch t := r.doc[field].(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return t
	default:
		r.fail(field, t, "time")
		return time.Time{}
	}
}

// Value reads a field of arbitrary type V. A missing or nil field reads
// as the zero V.
func Value[V any](r *DocReader, field string) V {
	var zero V
	v, ok := r.doc[field]
	if !ok || v == nil {
		return zero
	}
	typed, ok := v.(V)
	if !ok {
		r.fail(field, v, fmt.Sprintf("%T", zero))
		return zero
	}
	return typed
}

// Clone returns a shallow copy of d.
func (d Doc) Clone() Doc {
	out := make(Doc, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
