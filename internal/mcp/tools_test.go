package mcp

import (
	"context"
	"testing"

	"relichelper/internal/domain"
)

type mockStore struct {
	roster    []domain.CharacterFilter
	rosterErr error
	cat       *domain.Catalog
	catErr    error
}

func (m *mockStore) LoadRoster(ctx context.Context) ([]domain.CharacterFilter, error) {
	return m.roster, m.rosterErr
}

func (m *mockStore) SaveRoster(ctx context.Context, roster []domain.CharacterFilter) error {
	m.roster = roster
	return nil
}

func (m *mockStore) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	return m.cat, m.catErr
}

func (m *mockStore) SaveCatalog(ctx context.Context, cat *domain.Catalog) error {
	m.cat = cat
	return nil
}

func testRoster() []domain.CharacterFilter {
	return []domain.CharacterFilter{{
		ID:         "c-1",
		Name:       "丹恒・飲月",
		RelicSets:  []string{"Musketeer"},
		PlanarSets: []string{"Rutilant"},
		MainStats: domain.MainStatPriority{
			Body: []domain.WeightedStat{{Stat: domain.StatCritRate, Operator: domain.OperatorTop}},
		},
		SubStats: []domain.WeightedStat{
			{Stat: domain.StatCritRate, Operator: domain.OperatorTop},
			{Stat: domain.StatCritDMG, Operator: domain.OperatorEqual},
		},
		StatusMemo: map[domain.StatKind][]domain.StatusItem{
			domain.StatAttack: {
				{ID: "m-1", Name: "基礎", Value: 100, Kind: domain.ModifierBase, Operation: domain.OperationAdd, Enabled: true, InBattle: false},
				{ID: "m-2", Name: "光円錐", Value: 30, Kind: domain.ModifierBase, Operation: domain.OperationMultiply, Enabled: true, InBattle: false},
			},
		},
	}}
}

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		RelicSets: []domain.RelicSet{
			{ID: "Musketeer", Name: "草の穂ガンマン", Category: domain.CategoryCavern, Group: 3},
		},
		PlanarSets: []domain.RelicSet{
			{ID: "Rutilant", Name: "星々の競技場", Category: domain.CategoryPlanar, Group: 5},
		},
	}
}

func TestListCharacters(t *testing.T) {
	server := NewServer(&mockStore{roster: testRoster(), cat: testCatalog()}, "test")

	_, output, err := server.handleListCharacters(context.Background(), nil, ListCharactersInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Characters) != 1 || output.Characters[0].ID != "c-1" {
		t.Fatalf("unexpected list output: %+v", output)
	}
}

func TestGetCharacter(t *testing.T) {
	server := NewServer(&mockStore{roster: testRoster(), cat: testCatalog()}, "test")

	t.Run("resolves set labels", func(t *testing.T) {
		_, output, err := server.handleGetCharacter(context.Background(), nil, GetCharacterInput{Character: "丹恒・飲月"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.RelicSets) != 1 || output.RelicSets[0] != "草の穂ガンマン" {
			t.Fatalf("unexpected relic sets: %+v", output.RelicSets)
		}
		if len(output.SubStats) != 2 || output.SubStats[0].Label != "会心率" {
			t.Fatalf("unexpected sub stats: %+v", output.SubStats)
		}
	})

	t.Run("unknown character", func(t *testing.T) {
		if _, _, err := server.handleGetCharacter(context.Background(), nil, GetCharacterInput{Character: "missing"}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty key", func(t *testing.T) {
		if _, _, err := server.handleGetCharacter(context.Background(), nil, GetCharacterInput{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestReverseLookup(t *testing.T) {
	server := NewServer(&mockStore{roster: testRoster(), cat: testCatalog()}, "test")

	t.Run("cavern breakdown", func(t *testing.T) {
		_, output, err := server.handleReverseLookup(context.Background(), nil, ReverseLookupInput{Category: "cavern"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Sets) != 1 || output.Sets[0].ID != "Musketeer" {
			t.Fatalf("unexpected lookup output: %+v", output)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		if _, _, err := server.handleReverseLookup(context.Background(), nil, ReverseLookupInput{Category: "weapon"}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("partial pivot", func(t *testing.T) {
		if _, _, err := server.handleReverseLookup(context.Background(), nil, ReverseLookupInput{Category: "cavern", PivotStat: "CritRate"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCalcStatus(t *testing.T) {
	server := NewServer(&mockStore{roster: testRoster(), cat: testCatalog()}, "test")

	t.Run("memo totals", func(t *testing.T) {
		_, output, err := server.handleCalcStatus(context.Background(), nil, CalcStatusInput{Character: "c-1", Stat: "Attack"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.BaseTotal != 130 || output.FinalTotal != 130 {
			t.Fatalf("unexpected totals: %+v", output)
		}
		if output.Items != 2 {
			t.Fatalf("expected 2 items, got %d", output.Items)
		}
	})

	t.Run("stat without memo", func(t *testing.T) {
		_, output, err := server.handleCalcStatus(context.Background(), nil, CalcStatusInput{Character: "c-1", Stat: "Speed"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Items != 0 || output.FinalTotal != 0 {
			t.Fatalf("unexpected totals: %+v", output)
		}
	})

	t.Run("unknown stat", func(t *testing.T) {
		if _, _, err := server.handleCalcStatus(context.Background(), nil, CalcStatusInput{Character: "c-1", Stat: "Luck"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestListSets(t *testing.T) {
	t.Run("both categories", func(t *testing.T) {
		server := NewServer(&mockStore{cat: testCatalog()}, "test")
		_, output, err := server.handleListSets(context.Background(), nil, ListSetsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Sets) != 2 {
			t.Fatalf("expected 2 sets, got %d", len(output.Sets))
		}
	})

	t.Run("empty store falls back to built-in catalog", func(t *testing.T) {
		server := NewServer(&mockStore{}, "test")
		_, output, err := server.handleListSets(context.Background(), nil, ListSetsInput{Category: "planar"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Sets) == 0 {
			t.Fatalf("expected built-in sets")
		}
		for _, set := range output.Sets {
			if set.Category != string(domain.CategoryPlanar) {
				t.Fatalf("unexpected category: %+v", set)
			}
		}
	})
}
