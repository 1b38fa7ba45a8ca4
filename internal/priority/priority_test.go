package priority

import (
	"errors"
	"testing"

	"relichelper/internal/domain"
)

func bodyOptions() []domain.StatKind {
	return domain.MainStatOptions(domain.SlotBody)
}

func TestToggle(t *testing.T) {
	t.Run("first entry gets the top marker", func(t *testing.T) {
		list, err := Toggle(nil, domain.StatCritRate, bodyOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(list))
		}
		if list[0].Operator != domain.OperatorTop {
			t.Fatalf("operator: got %q, want %q", list[0].Operator, domain.OperatorTop)
		}
	})

	t.Run("later entries get greater", func(t *testing.T) {
		list, _ := Toggle(nil, domain.StatCritRate, bodyOptions())
		list, err := Toggle(list, domain.StatCritDMG, bodyOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list[1].Operator != domain.OperatorGreater {
			t.Fatalf("operator: got %q, want %q", list[1].Operator, domain.OperatorGreater)
		}
	})

	t.Run("toggle removes and promotes the new head", func(t *testing.T) {
		list, _ := Toggle(nil, domain.StatCritRate, bodyOptions())
		list, _ = Toggle(list, domain.StatCritDMG, bodyOptions())
		list, err := Toggle(list, domain.StatCritRate, bodyOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 || list[0].Stat != domain.StatCritDMG {
			t.Fatalf("unexpected list: %+v", list)
		}
		if list[0].Operator != domain.OperatorTop {
			t.Fatalf("promoted head operator: got %q, want %q", list[0].Operator, domain.OperatorTop)
		}
	})

	t.Run("double toggle restores the empty list", func(t *testing.T) {
		list, _ := Toggle(nil, domain.StatHP, bodyOptions())
		list, _ = Toggle(list, domain.StatHP, bodyOptions())
		if len(list) != 0 {
			t.Fatalf("expected empty list, got %+v", list)
		}
	})

	t.Run("ineligible stat rejected", func(t *testing.T) {
		_, err := Toggle(nil, domain.StatSpeed, bodyOptions())
		if !errors.Is(err, ErrStatNotAllowed) {
			t.Fatalf("expected ErrStatNotAllowed, got %v", err)
		}
	})

	t.Run("input never mutated", func(t *testing.T) {
		original := []domain.WeightedStat{
			{Stat: domain.StatCritRate, Operator: domain.OperatorTop},
		}
		if _, err := Toggle(original, domain.StatCritDMG, bodyOptions()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(original) != 1 || original[0].Stat != domain.StatCritRate {
			t.Fatalf("input mutated: %+v", original)
		}
	})
}

func TestCycleOperator(t *testing.T) {
	list := []domain.WeightedStat{
		{Stat: domain.StatCritRate, Operator: domain.OperatorTop},
		{Stat: domain.StatCritDMG, Operator: domain.OperatorGreater},
	}

	t.Run("cycles through the three operators", func(t *testing.T) {
		want := []domain.Operator{domain.OperatorGreaterEq, domain.OperatorEqual, domain.OperatorGreater}
		current := list
		for _, operator := range want {
			next, err := CycleOperator(current, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if next[1].Operator != operator {
				t.Fatalf("operator: got %q, want %q", next[1].Operator, operator)
			}
			current = next
		}
	})

	t.Run("index zero is a no-op", func(t *testing.T) {
		next, err := CycleOperator(list, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next[0].Operator != domain.OperatorTop {
			t.Fatalf("operator: got %q, want %q", next[0].Operator, domain.OperatorTop)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if _, err := CycleOperator(list, 2); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
		if _, err := CycleOperator(list, -1); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
	})
}

func TestReorder(t *testing.T) {
	list := []domain.WeightedStat{
		{Stat: domain.StatCritRate, Operator: domain.OperatorTop},
		{Stat: domain.StatCritDMG, Operator: domain.OperatorGreaterEq},
		{Stat: domain.StatHP, Operator: domain.OperatorGreater},
	}

	t.Run("moves and re-derives operators", func(t *testing.T) {
		out, err := Reorder(list, 2, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out[0].Stat != domain.StatHP || out[0].Operator != domain.OperatorTop {
			t.Fatalf("unexpected head: %+v", out[0])
		}
		if out[1].Stat != domain.StatCritRate || out[1].Operator != domain.OperatorGreater {
			t.Fatalf("demoted head should carry greater: %+v", out[1])
		}
		if out[2].Operator != domain.OperatorGreaterEq {
			t.Fatalf("untouched operator changed: %+v", out[2])
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if _, err := Reorder(list, 0, 3); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
	})

	t.Run("input never mutated", func(t *testing.T) {
		if _, err := Reorder(list, 0, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list[0].Stat != domain.StatCritRate || list[0].Operator != domain.OperatorTop {
			t.Fatalf("input mutated: %+v", list)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid list", func(t *testing.T) {
		list := []domain.WeightedStat{
			{Stat: domain.StatCritRate, Operator: domain.OperatorTop},
			{Stat: domain.StatCritDMG, Operator: domain.OperatorGreater},
		}
		if err := Validate(list, bodyOptions()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate stat", func(t *testing.T) {
		list := []domain.WeightedStat{
			{Stat: domain.StatCritRate, Operator: domain.OperatorTop},
			{Stat: domain.StatCritRate, Operator: domain.OperatorGreater},
		}
		if err := Validate(list, bodyOptions()); !errors.Is(err, ErrDuplicateStat) {
			t.Fatalf("expected ErrDuplicateStat, got %v", err)
		}
	})

	t.Run("ineligible stat", func(t *testing.T) {
		list := []domain.WeightedStat{
			{Stat: domain.StatSpeed, Operator: domain.OperatorTop},
		}
		if err := Validate(list, bodyOptions()); !errors.Is(err, ErrStatNotAllowed) {
			t.Fatalf("expected ErrStatNotAllowed, got %v", err)
		}
	})
}

func TestNormalized(t *testing.T) {
	t.Run("holds after any sequence of operations", func(t *testing.T) {
		list, _ := Toggle(nil, domain.StatCritRate, bodyOptions())
		list, _ = Toggle(list, domain.StatCritDMG, bodyOptions())
		list, _ = Toggle(list, domain.StatHP, bodyOptions())
		list, _ = CycleOperator(list, 2)
		list, _ = Reorder(list, 2, 0)
		list, _ = Toggle(list, domain.StatCritDMG, bodyOptions())
		if !Normalized(list) {
			t.Fatalf("invariant broken: %+v", list)
		}
	})

	t.Run("detects a stale top marker", func(t *testing.T) {
		list := []domain.WeightedStat{
			{Stat: domain.StatCritRate, Operator: domain.OperatorGreater},
			{Stat: domain.StatCritDMG, Operator: domain.OperatorTop},
		}
		if Normalized(list) {
			t.Fatalf("expected invariant violation")
		}
	})
}
