package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"relichelper/internal/domain"
)

func TestRoster(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is an empty roster", func(t *testing.T) {
		s := New(t.TempDir(), "characters.json", "relics.json")
		chars, err := s.LoadRoster(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if chars != nil {
			t.Fatalf("expected nil roster, got %+v", chars)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		s := New(t.TempDir(), "characters.json", "relics.json")
		in := []domain.CharacterFilter{{
			ID:        "c-1",
			Name:      "丹恒・飲月",
			RelicSets: []string{"Musketeer"},
			SubStats: []domain.WeightedStat{
				{Stat: domain.StatCritRate, Operator: domain.OperatorTop},
			},
			StatusMemo: map[domain.StatKind][]domain.StatusItem{
				domain.StatAttack: {{
					ID: "m-1", Name: "基礎", Value: 100,
					Kind: domain.ModifierBase, Operation: domain.OperationAdd,
					Enabled: true, InBattle: false,
				}},
			},
		}}
		if err := s.SaveRoster(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := s.LoadRoster(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].Name != in[0].Name {
			t.Fatalf("unexpected roster: %+v", out)
		}
		memo := out[0].StatusMemo[domain.StatAttack]
		if len(memo) != 1 || memo[0].InBattle {
			t.Fatalf("memo not preserved: %+v", memo)
		}
	})

	t.Run("nil roster saves as empty array", func(t *testing.T) {
		dir := t.TempDir()
		s := New(dir, "characters.json", "relics.json")
		if err := s.SaveRoster(ctx, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "characters.json"))
		if err != nil {
			t.Fatalf("reading file: %v", err)
		}
		if string(data) != "[]" {
			t.Fatalf("expected empty array, got %q", data)
		}
	})

	t.Run("corrupt file reports an error", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "characters.json"), []byte("{broken"), 0o600); err != nil {
			t.Fatalf("writing file: %v", err)
		}
		s := New(dir, "characters.json", "relics.json")
		if _, err := s.LoadRoster(ctx); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is nil", func(t *testing.T) {
		s := New(t.TempDir(), "characters.json", "relics.json")
		cat, err := s.LoadCatalog(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cat != nil {
			t.Fatalf("expected nil catalog, got %+v", cat)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		s := New(t.TempDir(), "characters.json", "relics.json")
		in := &domain.Catalog{
			RelicSets: []domain.RelicSet{
				{ID: "Musketeer", Name: "草の穂ガンマン", Category: domain.CategoryCavern, Group: 3},
			},
			PlanarSets: []domain.RelicSet{
				{ID: "Rutilant", Name: "星々の競技場", Category: domain.CategoryPlanar, Group: 5},
			},
		}
		if err := s.SaveCatalog(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := s.LoadCatalog(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.RelicSets) != 1 || out.RelicSets[0].Name != "草の穂ガンマン" {
			t.Fatalf("unexpected catalog: %+v", out)
		}
		if out.PlanarSets[0].Category != domain.CategoryPlanar {
			t.Fatalf("category not preserved: %+v", out.PlanarSets[0])
		}
	})

	t.Run("creates the data directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		s := New(dir, "characters.json", "relics.json")
		if err := s.SaveCatalog(ctx, &domain.Catalog{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "relics.json")); err != nil {
			t.Fatalf("catalog file missing: %v", err)
		}
	})
}
