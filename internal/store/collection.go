package store

import "context"

// Doc is a flat document keyed by storage field name.
type Doc map[string]any

// Sort orders Find results by a field.
type Sort struct {
	Field string
	Desc  bool
}

// FindOptions control ordering and paging of Find.
type FindOptions struct {
	Sort  []Sort
	Skip  int
	Limit int // 0 means no limit
}

// FindOption configures FindOptions.
type FindOption func(*FindOptions)

// WithSort appends an ordering key. Keys are applied in the order given.
func WithSort(field string, desc bool) FindOption {
	return func(o *FindOptions) {
		o.Sort = append(o.Sort, Sort{Field: field, Desc: desc})
	}
}

// WithSkip skips the first n matching documents.
func WithSkip(n int) FindOption {
	return func(o *FindOptions) {
		if n > 0 {
			o.Skip = n
		}
	}
}

// WithLimit caps the number of returned documents.
func WithLimit(n int) FindOption {
	return func(o *FindOptions) {
		if n > 0 {
			o.Limit = n
		}
	}
}

// BuildFindOptions applies opts to a zero FindOptions.
func BuildFindOptions(opts ...FindOption) FindOptions {
	var o FindOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Collection is a persistent set of documents of type T.
//
// Implementations return domain.ErrStoreUnavailable (wrapped) when the
// underlying store fails; Find and Count never return ErrNotFound for an
// empty result.
type Collection[T any] interface {
	Find(ctx context.Context, f Filter, opts ...FindOption) ([]T, error)
	Count(ctx context.Context, f Filter) (int, error)
	Insert(ctx context.Context, doc T) error
	// UpdateOne applies u to at most one document matching f.
	UpdateOne(ctx context.Context, f Filter, u Update) (int64, error)
	UpdateMany(ctx context.Context, f Filter, u Update) (int64, error)
	// DeleteOne removes at most one document matching f and returns the deleted count.
	DeleteOne(ctx context.Context, f Filter) (int64, error)
	DeleteMany(ctx context.Context, f Filter) (int64, error)
}

// Schema describes how documents of type T are named and encoded.
type Schema[T any] struct {
	// Name is the collection (table) name.
	Name string
	// Key is the identity field.
	Key string
	// Fields lists every stored field, identity included.
	Fields []string
	// Encode converts a T into a Doc holding every field in Fields.
	Encode func(T) Doc
	// Decode rebuilds a T from a Doc produced by Encode (possibly updated).
	Decode func(Doc) (T, error)
}
