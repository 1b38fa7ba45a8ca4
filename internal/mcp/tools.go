package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"relichelper/internal/catalog"
	"relichelper/internal/domain"
	"relichelper/internal/lookup"
	"relichelper/internal/roster"
	"relichelper/internal/status"
)

type ListCharactersInput struct{}

type GetCharacterInput struct {
	Character string `json:"character" jsonschema:"character id or display name"`
}

type ReverseLookupInput struct {
	Category  string `json:"category" jsonschema:"cavern or planar"`
	PivotSlot string `json:"pivot_slot,omitempty" jsonschema:"slot of the main-stat bucket to pivot on"`
	PivotStat string `json:"pivot_stat,omitempty" jsonschema:"stat of the main-stat bucket to pivot on"`
}

type CalcStatusInput struct {
	Character string `json:"character" jsonschema:"character id or display name"`
	Stat      string `json:"stat" jsonschema:"stat kind the memo is attached to"`
}

type ListSetsInput struct {
	Category string `json:"category,omitempty" jsonschema:"cavern or planar; empty lists both"`
}

type CharacterSummaryOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UpdatedAt int64  `json:"updated_at"`
}

type ListCharactersOutput struct {
	Characters []CharacterSummaryOutput `json:"characters"`
}

type WeightedStatOutput struct {
	Stat     string `json:"stat"`
	Label    string `json:"label"`
	Operator string `json:"operator"`
}

type CharacterOutput struct {
	ID         string                          `json:"id"`
	Name       string                          `json:"name"`
	UpdatedAt  int64                           `json:"updated_at"`
	RelicSets  []string                        `json:"relic_sets"`
	PlanarSets []string                        `json:"planar_sets"`
	MainStats  map[string][]WeightedStatOutput `json:"main_stats"`
	SubStats   []WeightedStatOutput            `json:"sub_stats"`
}

type ReverseLookupOutput struct {
	Sets []lookup.SetBreakdown `json:"sets"`
}

type CalcStatusOutput struct {
	Stat              string  `json:"stat"`
	Items             int     `json:"items"`
	BaseTotal         float64 `json:"base_total"`
	FinalTotal        float64 `json:"final_total"`
	StatusScreenFinal float64 `json:"status_screen_final"`
}

type SetOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Group    int    `json:"group,omitempty"`
}

type ListSetsOutput struct {
	Sets []SetOutput `json:"sets"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_characters",
		Description: "List roster entries in their ranked order",
	}, s.handleListCharacters)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_character",
		Description: "Retrieve one character filter with set names resolved",
	}, s.handleGetCharacter)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "reverse_lookup",
		Description: "Group the roster by relic set, optionally pivoted on a main-stat bucket",
	}, s.handleReverseLookup)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "calc_status",
		Description: "Compute the layered totals of one character's status memo",
	}, s.handleCalcStatus)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_sets",
		Description: "List catalog sets grouped by farming location",
	}, s.handleListSets)
}

func (s *Server) handleListCharacters(ctx context.Context, req *sdk.CallToolRequest, input ListCharactersInput) (*sdk.CallToolResult, ListCharactersOutput, error) {
	chars, err := s.db.LoadRoster(ctx)
	if err != nil {
		return nil, ListCharactersOutput{}, err
	}

	output := make([]CharacterSummaryOutput, 0, len(chars))
	for _, char := range chars {
		output = append(output, CharacterSummaryOutput{
			ID:        char.ID,
			Name:      char.Name,
			UpdatedAt: char.UpdatedAt,
		})
	}
	return nil, ListCharactersOutput{Characters: output}, nil
}

func (s *Server) handleGetCharacter(ctx context.Context, req *sdk.CallToolRequest, input GetCharacterInput) (*sdk.CallToolResult, CharacterOutput, error) {
	if input.Character == "" {
		return nil, CharacterOutput{}, fmt.Errorf("character is required")
	}
	chars, cat, err := s.load(ctx)
	if err != nil {
		return nil, CharacterOutput{}, err
	}
	char, err := roster.Find(chars, input.Character)
	if err != nil {
		return nil, CharacterOutput{}, err
	}
	return nil, characterOutput(char, cat), nil
}

func (s *Server) handleReverseLookup(ctx context.Context, req *sdk.CallToolRequest, input ReverseLookupInput) (*sdk.CallToolResult, ReverseLookupOutput, error) {
	category, ok := domain.ParseCategory(input.Category)
	if !ok {
		return nil, ReverseLookupOutput{}, fmt.Errorf("unknown category: %s", input.Category)
	}

	var pivot *lookup.Pivot
	if input.PivotSlot != "" || input.PivotStat != "" {
		slot, ok := domain.ParseSlot(input.PivotSlot)
		if !ok {
			return nil, ReverseLookupOutput{}, fmt.Errorf("unknown pivot slot: %s", input.PivotSlot)
		}
		stat, ok := domain.ParseStatKind(input.PivotStat)
		if !ok {
			return nil, ReverseLookupOutput{}, fmt.Errorf("unknown pivot stat: %s", input.PivotStat)
		}
		pivot = &lookup.Pivot{Slot: slot, Stat: stat}
	}

	chars, cat, err := s.load(ctx)
	if err != nil {
		return nil, ReverseLookupOutput{}, err
	}
	sets := lookup.Build(chars, cat.Sets(category), category, pivot)
	return nil, ReverseLookupOutput{Sets: sets}, nil
}

func (s *Server) handleCalcStatus(ctx context.Context, req *sdk.CallToolRequest, input CalcStatusInput) (*sdk.CallToolResult, CalcStatusOutput, error) {
	if input.Character == "" {
		return nil, CalcStatusOutput{}, fmt.Errorf("character is required")
	}
	stat, ok := domain.ParseStatKind(input.Stat)
	if !ok {
		return nil, CalcStatusOutput{}, fmt.Errorf("unknown stat: %s", input.Stat)
	}

	chars, err := s.db.LoadRoster(ctx)
	if err != nil {
		return nil, CalcStatusOutput{}, err
	}
	char, err := roster.Find(chars, input.Character)
	if err != nil {
		return nil, CalcStatusOutput{}, err
	}

	items := char.StatusMemo[stat]
	result := status.Calculate(items)
	return nil, CalcStatusOutput{
		Stat:              string(stat),
		Items:             len(items),
		BaseTotal:         result.BaseTotal,
		FinalTotal:        result.FinalTotal,
		StatusScreenFinal: result.StatusScreenFinal,
	}, nil
}

func (s *Server) handleListSets(ctx context.Context, req *sdk.CallToolRequest, input ListSetsInput) (*sdk.CallToolResult, ListSetsOutput, error) {
	cat, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, ListSetsOutput{}, err
	}

	categories := []domain.Category{domain.CategoryCavern, domain.CategoryPlanar}
	if input.Category != "" {
		category, ok := domain.ParseCategory(input.Category)
		if !ok {
			return nil, ListSetsOutput{}, fmt.Errorf("unknown category: %s", input.Category)
		}
		categories = []domain.Category{category}
	}

	var output []SetOutput
	for _, category := range categories {
		for _, set := range catalog.Sorted(cat.Sets(category)) {
			output = append(output, SetOutput{
				ID:       set.ID,
				Name:     set.Name,
				Category: string(set.Category),
				Group:    set.Group,
			})
		}
	}
	return nil, ListSetsOutput{Sets: output}, nil
}

func (s *Server) load(ctx context.Context) ([]domain.CharacterFilter, *domain.Catalog, error) {
	chars, err := s.db.LoadRoster(ctx)
	if err != nil {
		return nil, nil, err
	}
	cat, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	return chars, cat, nil
}

// loadCatalog substitutes the built-in catalog when the store has none
// saved yet, matching what the CLI commands show.
func (s *Server) loadCatalog(ctx context.Context) (*domain.Catalog, error) {
	cat, err := s.db.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		cat = catalog.Default()
	}
	return cat, nil
}

func characterOutput(char *domain.CharacterFilter, cat *domain.Catalog) CharacterOutput {
	out := CharacterOutput{
		ID:         char.ID,
		Name:       char.Name,
		UpdatedAt:  char.UpdatedAt,
		RelicSets:  setLabels(cat, char.RelicSets),
		PlanarSets: setLabels(cat, char.PlanarSets),
		MainStats:  make(map[string][]WeightedStatOutput, len(domain.FilterSlots())),
		SubStats:   weightedStatOutputs(char.SubStats),
	}
	for _, slot := range domain.FilterSlots() {
		out.MainStats[string(slot)] = weightedStatOutputs(char.MainStats.ForSlot(slot))
	}
	return out
}

func setLabels(cat *domain.Catalog, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog.Label(cat, id))
	}
	return out
}

func weightedStatOutputs(list []domain.WeightedStat) []WeightedStatOutput {
	out := make([]WeightedStatOutput, 0, len(list))
	for _, entry := range list {
		out = append(out, WeightedStatOutput{
			Stat:     string(entry.Stat),
			Label:    entry.Stat.Label(),
			Operator: string(entry.Operator),
		})
	}
	return out
}
