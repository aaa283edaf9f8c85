package postgres

import (
	"context"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/grouponesailor/group6-tips-server/internal/store"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Collection is a store.Collection backed by one PostgreSQL table.
// Rows are scanned into T by column name, so T carries db tags matching
// the schema's field list.
type Collection[T any] struct {
	db     DB
	schema store.Schema[T]
}

// NewCollection creates a collection over the schema's table.
func NewCollection[T any](db DB, schema store.Schema[T]) *Collection[T] {
	return &Collection[T]{db: db, schema: schema}
}

var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

// Find returns the rows matching f.
func (c *Collection[T]) Find(ctx context.Context, f store.Filter, opts ...store.FindOption) ([]T, error) {
	o := store.BuildFindOptions(opts...)

	where, err := c.where(f)
	if err != nil {
		return nil, err
	}

	query := psql.Select(c.schema.Fields...).From(c.schema.Name)
	if where != nil {
		query = query.Where(where)
	}
	for _, s := range o.Sort {
		if err := c.checkField(s.Field); err != nil {
			return nil, err
		}
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		query = query.OrderBy(s.Field + " " + dir)
	}
	if o.Skip > 0 {
		query = query.Offset(uint64(o.Skip))
	}
	if o.Limit > 0 {
		query = query.Limit(uint64(o.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("find %s: build query: %w", c.schema.Name, err)
	}

	var rows []T
	if err := pgxscan.Select(ctx, QuerierFromCtx(ctx, c.db), &rows, sqlStr, args...); err != nil {
		return nil, mapError(err, "find "+c.schema.Name)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// Count returns the number of rows matching f.
func (c *Collection[T]) Count(ctx context.Context, f store.Filter) (int, error) {
	where, err := c.where(f)
	if err != nil {
		return 0, err
	}

	query := psql.Select("COUNT(*)").From(c.schema.Name)
	if where != nil {
		query = query.Where(where)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("count %s: build query: %w", c.schema.Name, err)
	}

	var n int
	if err := QuerierFromCtx(ctx, c.db).QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, mapError(err, "count "+c.schema.Name)
	}
	return n, nil
}

// Insert writes a new row.
func (c *Collection[T]) Insert(ctx context.Context, v T) error {
	doc := c.schema.Encode(v)

	values := make([]any, len(c.schema.Fields))
	for i, field := range c.schema.Fields {
		values[i] = doc[field]
	}

	sqlStr, args, err := psql.Insert(c.schema.Name).
		Columns(c.schema.Fields...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("insert %s: build query: %w", c.schema.Name, err)
	}

	if _, err := QuerierFromCtx(ctx, c.db).Exec(ctx, sqlStr, args...); err != nil {
		return mapError(err, "insert "+c.schema.Name)
	}
	return nil
}

// UpdateOne applies u to at most one row matching f.
func (c *Collection[T]) UpdateOne(ctx context.Context, f store.Filter, u store.Update) (int64, error) {
	where, err := c.singleRow(f)
	if err != nil {
		return 0, err
	}
	return c.update(ctx, where, u, "update one "+c.schema.Name)
}

// UpdateMany applies u to every row matching f.
func (c *Collection[T]) UpdateMany(ctx context.Context, f store.Filter, u store.Update) (int64, error) {
	where, err := c.where(f)
	if err != nil {
		return 0, err
	}
	return c.update(ctx, where, u, "update "+c.schema.Name)
}

// DeleteOne removes at most one row matching f.
func (c *Collection[T]) DeleteOne(ctx context.Context, f store.Filter) (int64, error) {
	where, err := c.singleRow(f)
	if err != nil {
		return 0, err
	}
	return c.delete(ctx, where, "delete one "+c.schema.Name)
}

// DeleteMany removes every row matching f.
func (c *Collection[T]) DeleteMany(ctx context.Context, f store.Filter) (int64, error) {
	where, err := c.where(f)
	if err != nil {
		return 0, err
	}
	return c.delete(ctx, where, "delete "+c.schema.Name)
}

func (c *Collection[T]) update(ctx context.Context, where sq.Sqlizer, u store.Update, op string) (int64, error) {
	if u.IsEmpty() {
		return 0, nil
	}

	query := psql.Update(c.schema.Name)

	for _, field := range sortedKeys(u.Set) {
		if err := c.checkField(field); err != nil {
			return 0, err
		}
		query = query.Set(field, u.Set[field])
	}
	for _, field := range sortedKeys(u.Inc) {
		if err := c.checkField(field); err != nil {
			return 0, err
		}
		query = query.Set(field, sq.Expr(field+" + ?", u.Inc[field]))
	}
	if where != nil {
		query = query.Where(where)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: build query: %w", op, err)
	}

	tag, err := QuerierFromCtx(ctx, c.db).Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, mapError(err, op)
	}
	return tag.RowsAffected(), nil
}

func (c *Collection[T]) delete(ctx context.Context, where sq.Sqlizer, op string) (int64, error) {
	query := psql.Delete(c.schema.Name)
	if where != nil {
		query = query.Where(where)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: build query: %w", op, err)
	}

	tag, err := QuerierFromCtx(ctx, c.db).Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, mapError(err, op)
	}
	return tag.RowsAffected(), nil
}

// singleRow restricts f to the first matching physical row.
func (c *Collection[T]) singleRow(f store.Filter) (sq.Sqlizer, error) {
	where, err := c.where(f)
	if err != nil {
		return nil, err
	}

	sub := sq.Select("ctid").From(c.schema.Name).Limit(1)
	if where != nil {
		sub = sub.Where(where)
	}
	subSQL, subArgs, err := sub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build sub-select: %w", c.schema.Name, err)
	}
	return sq.Expr("ctid = ("+subSQL+")", subArgs...), nil
}

// where translates f into a squirrel predicate. It returns nil for the
// empty filter.
func (c *Collection[T]) where(f store.Filter) (sq.Sqlizer, error) {
	if f.IsEmpty() {
		return nil, nil
	}

	all := make(sq.And, 0, len(f.All)+1)
	for _, cond := range f.All {
		pred, err := c.cond(cond)
		if err != nil {
			return nil, err
		}
		all = append(all, pred)
	}

	if len(f.Any) > 0 {
		anyOf := make(sq.Or, 0, len(f.Any))
		for _, cond := range f.Any {
			pred, err := c.cond(cond)
			if err != nil {
				return nil, err
			}
			anyOf = append(anyOf, pred)
		}
		all = append(all, anyOf)
	}

	return all, nil
}

func (c *Collection[T]) cond(cond store.Cond) (sq.Sqlizer, error) {
	if err := c.checkField(cond.Field); err != nil {
		return nil, err
	}

	switch cond.Op {
	case store.OpEq:
		return sq.Eq{cond.Field: cond.Value}, nil
	case store.OpNe:
		return sq.NotEq{cond.Field: cond.Value}, nil
	case store.OpGt:
		return sq.Gt{cond.Field: cond.Value}, nil
	case store.OpGte:
		return sq.GtOrEq{cond.Field: cond.Value}, nil
	case store.OpLt:
		return sq.Lt{cond.Field: cond.Value}, nil
	case store.OpLte:
		return sq.LtOrEq{cond.Field: cond.Value}, nil
	case store.OpIn:
		values, _ := cond.Value.([]any)
		if len(values) == 0 {
			return sq.Expr("FALSE"), nil
		}
		return sq.Eq{cond.Field: values}, nil
	case store.OpContains:
		s, _ := cond.Value.(string)
		return sq.ILike{cond.Field: "%" + escapeLike(s) + "%"}, nil
	default:
		return nil, fmt.Errorf("%s: unsupported operator %s on %q", c.schema.Name, cond.Op, cond.Field)
	}
}

func (c *Collection[T]) checkField(field string) error {
	if !slices.Contains(c.schema.Fields, field) {
		return fmt.Errorf("%s: unknown field %q", c.schema.Name, field)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
