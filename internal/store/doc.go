// Package store defines the collection store contract consumed by the
// services: a small filter/update/sort vocabulary and the generic
// Collection interface implemented by the Postgres and in-memory adapters.
//
// Field names used in filters are storage field names (e.g. "display_order"),
// not Go field names.
package store
