// Package ordering keeps display_order keys dense within a scope.
//
// Keys are zero-based: a scope with n members holds exactly the keys
// 0..n-1. Every change is planned as at most one range shift of the other
// members, executed as a single UpdateMany.
package ordering

import (
	"fmt"
	"strconv"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
)

// Kind classifies a planned order change.
type Kind int

const (
	KindNoop Kind = iota
	KindAppend
	KindInsert
	KindMoveDown
	KindMoveUp
	KindRemove
)

func (k Kind) String() string {
	switch k {
	case KindNoop:
		return "noop"
	case KindAppend:
		return "append"
	case KindInsert:
		return "insert"
	case KindMoveDown:
		return "move_down"
	case KindMoveUp:
		return "move_up"
	case KindRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Unbounded marks a shift range without an upper end.
const Unbounded = -1

// Shift moves every other member whose key lies in [From, To] by Delta.
type Shift struct {
	From  int
	To    int // Unbounded for no upper limit
	Delta int
}

func (s Shift) String() string {
	to := "inf"
	if s.To != Unbounded {
		to = strconv.Itoa(s.To)
	}
	return fmt.Sprintf("[%d,%s]%+d", s.From, to, s.Delta)
}

// Plan is the outcome of planning one order change.
type Plan struct {
	Kind Kind
	// Key is the member's key after the change. Unused for KindRemove.
	Key int
	// Shift is nil when no other member moves.
	Shift *Shift
}

// PlanInsert plans placing a new member into a scope of size members.
// A nil requested key appends. Keys past the end are clamped to size.
func PlanInsert(size int, requested *int) (Plan, error) {
	if requested == nil {
		return Plan{Kind: KindAppend, Key: size}, nil
	}
	if err := checkKey(*requested); err != nil {
		return Plan{}, err
	}

	key := min(*requested, size)
	if key == size {
		return Plan{Kind: KindAppend, Key: size}, nil
	}
	return Plan{
		Kind:  KindInsert,
		Key:   key,
		Shift: &Shift{From: key, To: Unbounded, Delta: 1},
	}, nil
}

// PlanMove plans moving a member currently at old within a scope of size
// members (the member included). A nil requested key leaves it in place.
// Keys past the end are clamped to size-1.
func PlanMove(size, old int, requested *int) (Plan, error) {
	if requested == nil {
		return Plan{Kind: KindNoop, Key: old}, nil
	}
	if err := checkKey(*requested); err != nil {
		return Plan{}, err
	}

	key := min(*requested, max(size-1, 0))
	switch {
	case key == old:
		return Plan{Kind: KindNoop, Key: old}, nil
	case key > old:
		return Plan{
			Kind:  KindMoveDown,
			Key:   key,
			Shift: &Shift{From: old + 1, To: key, Delta: -1},
		}, nil
	default:
		return Plan{
			Kind:  KindMoveUp,
			Key:   key,
			Shift: &Shift{From: key, To: old - 1, Delta: 1},
		}, nil
	}
}

// PlanRemove plans closing the gap left by a member removed from old.
func PlanRemove(old int) Plan {
	return Plan{
		Kind:  KindRemove,
		Key:   old,
		Shift: &Shift{From: old + 1, To: Unbounded, Delta: -1},
	}
}

// CheckKey rejects a negative requested key. A nil key is valid.
func CheckKey(requested *int) error {
	if requested == nil {
		return nil
	}
	return checkKey(*requested)
}

func checkKey(key int) error {
	if key < 0 {
		return &domain.InvalidOrderKeyError{Value: strconv.Itoa(key)}
	}
	return nil
}
