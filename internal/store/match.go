package store

import (
	"fmt"
	"strings"
	"time"
)

// Match reports whether doc satisfies f.
func (f Filter) Match(doc Doc) bool {
	for _, c := range f.All {
		if !c.Match(doc) {
			return false
		}
	}
	if len(f.Any) == 0 {
		return true
	}
	for _, c := range f.Any {
		if c.Match(doc) {
			return true
		}
	}
	return false
}

// Match reports whether doc satisfies c. A missing or nil field only
// matches Ne.
func (c Cond) Match(doc Doc) bool {
	v, ok := doc[c.Field]
	if !ok || isNil(v) {
		return c.Op == OpNe && !isNil(c.Value)
	}

	switch c.Op {
	case OpEq:
		return Compare(v, c.Value) == 0
	case OpNe:
		return Compare(v, c.Value) != 0
	case OpGt:
		return Compare(v, c.Value) > 0
	case OpGte:
		return Compare(v, c.Value) >= 0
	case OpLt:
		return Compare(v, c.Value) < 0
	case OpLte:
		return Compare(v, c.Value) <= 0
	case OpIn:
		values, _ := c.Value.([]any)
		for _, want := range values {
			if Compare(v, want) == 0 {
				return true
			}
		}
		return false
	case OpContains:
		s, ok := deref(v).(string)
		if !ok {
			return false
		}
		sub, _ := c.Value.(string)
		return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
	default:
		return false
	}
}

// Compare orders two field values. Integers of any width compare
// numerically; strings, bools and times compare naturally. Values of
// unrelated types compare by their formatted representation.
func Compare(a, b any) int {
	a, b = deref(a), deref(b)

	if ai, ok := toInt64(a); ok {
		if bi, ok := toInt64(b); ok {
			return cmpOrdered(ai, bi)
		}
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func cmpOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}

func deref(v any) any {
	if s, ok := v.(*string); ok && s != nil {
		return *s
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(*string); ok && s == nil {
		return true
	}
	return false
}
