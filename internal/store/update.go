package store

import "fmt"

// Update describes a document mutation: fields in Set are overwritten,
// fields in Inc are incremented by the given delta. A field must not
// appear in both.
type Update struct {
	Set Doc
	Inc map[string]int
}

// SetFields returns an Update overwriting the given fields.
func SetFields(doc Doc) Update {
	return Update{Set: doc}
}

// Increment returns an Update adding delta to field.
func Increment(field string, delta int) Update {
	return Update{Inc: map[string]int{field: delta}}
}

// IsEmpty reports whether u changes nothing.
func (u Update) IsEmpty() bool {
	return len(u.Set) == 0 && len(u.Inc) == 0
}

// Apply returns a copy of doc with u applied. Increments of missing or
// non-integer fields are reported as an error.
func (u Update) Apply(doc Doc) (Doc, error) {
	out := doc.Clone()
	for k, v := range u.Set {
		out[k] = v
	}
	for k, delta := range u.Inc {
		switch n := out[k].(type) {
		case int:
			out[k] = n + delta
		case int32:
			out[k] = n + int32(delta)
		case int64:
			out[k] = n + int64(delta)
		default:
			return nil, fmt.Errorf("store: cannot increment field %q of type %T", k, out[k])
		}
	}
	return out, nil
}
