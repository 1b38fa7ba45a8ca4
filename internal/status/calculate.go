// Package status computes the layered totals of a status memo: an
// ordered list of additive/multiplicative modifiers folded into a base
// total and a final total, under the in-battle and status-screen
// inclusion filters.
package status

import (
	"math"

	"relichelper/internal/domain"
)

// Result holds the three reportable totals of one modifier list.
type Result struct {
	// BaseTotal is the base value plus all Base-layer modifiers.
	BaseTotal float64
	// FinalTotal is BaseTotal plus all Additional-layer modifiers.
	FinalTotal float64
	// StatusScreenFinal is the final total recomputed over only the
	// items flagged as not in-battle, i.e. the value a status screen
	// would show outside combat.
	StatusScreenFinal float64
}

// Calculate folds items into the three totals. The input list is never
// modified; disabled items contribute nothing to any total.
func Calculate(items []domain.StatusItem) Result {
	enabled := make([]domain.StatusItem, 0, len(items))
	for _, item := range items {
		if item.Enabled {
			enabled = append(enabled, item)
		}
	}

	baseTotal, finalTotal := run(enabled)

	screenItems := make([]domain.StatusItem, 0, len(enabled))
	for _, item := range enabled {
		if !item.InBattle {
			screenItems = append(screenItems, item)
		}
	}
	_, screenFinal := run(screenItems)

	return Result{
		BaseTotal:         baseTotal,
		FinalTotal:        finalTotal,
		StatusScreenFinal: screenFinal,
	}
}

// run performs one pass of the layered calculation over an already
// filtered item list. The base value is strictly the first Base item in
// list order; without one every total is zero.
func run(items []domain.StatusItem) (baseTotal, finalTotal float64) {
	baseIndex := -1
	for i, item := range items {
		if item.Kind == domain.ModifierBase {
			baseIndex = i
			break
		}
	}
	if baseIndex < 0 {
		return 0, 0
	}

	baseValue := safeValue(items[baseIndex].Value)

	var baseModifiers float64
	var additionalItems []domain.StatusItem
	for i, item := range items {
		switch {
		case i == baseIndex:
		case item.Kind == domain.ModifierBase:
			switch item.Operation {
			case domain.OperationAdd:
				baseModifiers += safeValue(item.Value)
			case domain.OperationMultiply:
				baseModifiers += baseValue * safeValue(item.Value) / 100
			}
		case item.Kind == domain.ModifierAdditional:
			additionalItems = append(additionalItems, item)
		}
	}
	baseTotal = baseValue + baseModifiers

	var additionalModifiers float64
	for _, item := range additionalItems {
		switch item.Operation {
		case domain.OperationAdd:
			additionalModifiers += safeValue(item.Value)
		case domain.OperationMultiply:
			additionalModifiers += baseTotal * safeValue(item.Value) / 100
		}
	}
	return baseTotal, baseTotal + additionalModifiers
}

// safeValue coerces NaN and infinite values to zero so a single bad
// entry cannot poison every total.
func safeValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
