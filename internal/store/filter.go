package store

import "strings"

// Op is a comparison operator of a single filter condition.
type Op int

const (
	OpEq Op = iota
	OpNe
	OpGt
	OpGte
	OpLt
	OpLte
	OpIn
	// OpContains is a case-insensitive literal substring match on string fields.
	OpContains
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "eq"
	case OpNe:
		return "ne"
	case OpGt:
		return "gt"
	case OpGte:
		return "gte"
	case OpLt:
		return "lt"
	case OpLte:
		return "lte"
	case OpIn:
		return "in"
	case OpContains:
		return "contains"
	default:
		return "unknown"
	}
}

// Cond is a single field predicate.
type Cond struct {
	Field string
	Op    Op
	Value any
}

func Eq(field string, v any) Cond  { return Cond{Field: field, Op: OpEq, Value: v} }
func Ne(field string, v any) Cond  { return Cond{Field: field, Op: OpNe, Value: v} }
func Gt(field string, v any) Cond  { return Cond{Field: field, Op: OpGt, Value: v} }
func Gte(field string, v any) Cond { return Cond{Field: field, Op: OpGte, Value: v} }
func Lt(field string, v any) Cond  { return Cond{Field: field, Op: OpLt, Value: v} }
func Lte(field string, v any) Cond { return Cond{Field: field, Op: OpLte, Value: v} }

// In matches documents whose field equals any of values.
// An empty values slice matches nothing.
func In[V any](field string, values []V) Cond {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return Cond{Field: field, Op: OpIn, Value: vs}
}

// Contains matches documents whose string field contains substr, ignoring case.
func Contains(field, substr string) Cond {
	return Cond{Field: field, Op: OpContains, Value: substr}
}

// Filter selects documents. All conditions in All must hold; if Any is
// non-empty, at least one of its conditions must hold as well.
// The zero Filter matches every document.
type Filter struct {
	All []Cond
	Any []Cond
}

// Where returns a Filter requiring all of conds.
func Where(conds ...Cond) Filter {
	return Filter{All: conds}
}

// And returns a copy of f with conds added to the conjunction.
func (f Filter) And(conds ...Cond) Filter {
	all := make([]Cond, 0, len(f.All)+len(conds))
	all = append(all, f.All...)
	all = append(all, conds...)
	return Filter{All: all, Any: f.Any}
}

// Or returns a copy of f with conds added to the disjunction group.
func (f Filter) Or(conds ...Cond) Filter {
	anyOf := make([]Cond, 0, len(f.Any)+len(conds))
	anyOf = append(anyOf, f.Any...)
	anyOf = append(anyOf, conds...)
	return Filter{All: f.All, Any: anyOf}
}

// IsEmpty reports whether f matches every document.
func (f Filter) IsEmpty() bool {
	return len(f.All) == 0 && len(f.Any) == 0
}

func (f Filter) String() string {
	var b strings.Builder
	writeConds := func(conds []Cond, sep string) {
		for i, c := range conds {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(c.Field)
			b.WriteByte(' ')
			b.WriteString(c.Op.String())
		}
	}
	writeConds(f.All, " and ")
	if len(f.Any) > 0 {
		if len(f.All) > 0 {
			b.WriteString(" and ")
		}
		b.WriteByte('(')
		writeConds(f.Any, " or ")
		b.WriteByte(')')
	}
	return b.String()
}
