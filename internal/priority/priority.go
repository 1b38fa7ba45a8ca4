// Package priority maintains the ordered (stat, operator) preference
// lists a character filter keeps per slot and for its sub-stat pool.
// Every operation returns a fresh list and re-derives the operator
// bookkeeping: index 0 always carries "-", no other entry does.
package priority

import (
	"errors"
	"fmt"

	"relichelper/internal/domain"
)

var (
	// ErrStatNotAllowed reports a stat outside the slot's eligible set.
	ErrStatNotAllowed = errors.New("stat not allowed")
	// ErrDuplicateStat reports a stat appearing twice in one list.
	ErrDuplicateStat = errors.New("duplicate stat")
	// ErrIndexOutOfRange reports an index outside the list bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Toggle removes stat if present, otherwise appends it. A freshly
// appended entry gets "-" in an empty list and ">" otherwise. The
// allowed set is the slot's eligible stats; toggling anything else
// fails without touching the list.
func Toggle(list []domain.WeightedStat, stat domain.StatKind, allowed []domain.StatKind) ([]domain.WeightedStat, error) {
	if !contains(allowed, stat) {
		return nil, fmt.Errorf("%w: %s", ErrStatNotAllowed, stat)
	}

	out := make([]domain.WeightedStat, 0, len(list)+1)
	found := false
	for _, entry := range list {
		if entry.Stat == stat {
			found = true
			continue
		}
		out = append(out, entry)
	}
	if !found {
		operator := domain.OperatorGreater
		if len(out) == 0 {
			operator = domain.OperatorTop
		}
		out = append(out, domain.WeightedStat{Stat: stat, Operator: operator})
	}
	return normalize(out), nil
}

// CycleOperator advances the operator at index through > → >= → = → >.
// Index 0 is pinned to "-" and cycling it is a no-op.
func CycleOperator(list []domain.WeightedStat, index int) ([]domain.WeightedStat, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	out := append([]domain.WeightedStat(nil), list...)
	if index == 0 {
		return out, nil
	}
	switch out[index].Operator {
	case domain.OperatorGreater:
		out[index].Operator = domain.OperatorGreaterEq
	case domain.OperatorGreaterEq:
		out[index].Operator = domain.OperatorEqual
	default:
		out[index].Operator = domain.OperatorGreater
	}
	return out, nil
}

// Reorder moves the entry at from to position to, keeping every other
// entry's relative order, then re-derives the operators.
func Reorder(list []domain.WeightedStat, from, to int) ([]domain.WeightedStat, error) {
	if from < 0 || from >= len(list) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, from)
	}
	if to < 0 || to >= len(list) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, to)
	}
	out := append([]domain.WeightedStat(nil), list...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]domain.WeightedStat{moved}, out[to:]...)...)
	return normalize(out), nil
}

// Validate rejects duplicate stats and stats outside the allowed set.
func Validate(list []domain.WeightedStat, allowed []domain.StatKind) error {
	seen := make(map[domain.StatKind]struct{}, len(list))
	for _, entry := range list {
		if _, ok := seen[entry.Stat]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateStat, entry.Stat)
		}
		seen[entry.Stat] = struct{}{}
		if !contains(allowed, entry.Stat) {
			return fmt.Errorf("%w: %s", ErrStatNotAllowed, entry.Stat)
		}
	}
	return nil
}

// Normalized reports whether the operator invariant holds: index 0
// carries "-" and no later entry does.
func Normalized(list []domain.WeightedStat) bool {
	for i, entry := range list {
		if (entry.Operator == domain.OperatorTop) != (i == 0) {
			return false
		}
	}
	return true
}

// normalize re-derives the operator assignment after a structural
// change: position 0 gets "-", and any entry that inherited "-" from a
// previous position is promoted to ">". The stored operators are never
// trusted across a mutation.
func normalize(list []domain.WeightedStat) []domain.WeightedStat {
	for i := range list {
		if i == 0 {
			list[i].Operator = domain.OperatorTop
			continue
		}
		if list[i].Operator == domain.OperatorTop {
			list[i].Operator = domain.OperatorGreater
		}
	}
	return list
}

func contains(kinds []domain.StatKind, stat domain.StatKind) bool {
	for _, kind := range kinds {
		if kind == stat {
			return true
		}
	}
	return false
}
