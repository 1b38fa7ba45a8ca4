package roster

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"relichelper/internal/domain"
)

// ImportResult counts the outcome of one batch import. Skipped records
// never abort the batch.
type ImportResult struct {
	Imported int
	Skipped  int
}

// probe checks required-field presence without committing to the full
// schema, so one malformed element cannot fail its neighbors.
type probe struct {
	Name      string          `json:"characterName"`
	RelicSets json.RawMessage `json:"targetRelicSets"`
	MainStats json.RawMessage `json:"mainStats"`
}

// Import appends every valid element of an arbitrary JSON array to the
// roster. Each accepted record gets a fresh id and current timestamp so
// imported entries can never collide with existing ones; elements
// missing characterName, targetRelicSets, or mainStats are counted and
// skipped.
func Import(roster []domain.CharacterFilter, data []byte) ([]domain.CharacterFilter, ImportResult, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, ImportResult{}, fmt.Errorf("decoding import batch: %w", err)
	}

	out := append([]domain.CharacterFilter(nil), roster...)
	var result ImportResult
	for _, element := range elements {
		var p probe
		if err := json.Unmarshal(element, &p); err != nil {
			result.Skipped++
			continue
		}
		if p.Name == "" || p.RelicSets == nil || p.MainStats == nil {
			result.Skipped++
			continue
		}

		var char domain.CharacterFilter
		if err := json.Unmarshal(element, &char); err != nil {
			result.Skipped++
			continue
		}
		char.ID = uuid.NewString()
		char.UpdatedAt = time.Now().UnixMilli()
		out = append(out, char)
		result.Imported++
	}
	return out, result, nil
}

// Export renders the selected entries as the indented JSON array the
// import side accepts. With no ids given the whole roster is exported.
func Export(roster []domain.CharacterFilter, ids ...string) ([]byte, error) {
	selected := roster
	if len(ids) > 0 {
		keep := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			keep[id] = struct{}{}
		}
		selected = make([]domain.CharacterFilter, 0, len(ids))
		for _, char := range roster {
			if _, ok := keep[char.ID]; ok {
				selected = append(selected, char)
			}
		}
	}
	data, err := json.MarshalIndent(selected, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}
	return data, nil
}
