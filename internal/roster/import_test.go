package roster

import (
	"encoding/json"
	"testing"

	"relichelper/internal/domain"
)

const validRecord = `{
	"id": "old-id",
	"characterName": "丹恒・飲月",
	"updatedAt": 1700000000000,
	"targetRelicSets": ["Musketeer"],
	"targetPlanarSets": ["Rutilant"],
	"mainStats": {
		"body": [{"stat": "CritRate", "operator": "-"}]
	},
	"subStats": [{"stat": "CritRate", "operator": "-"}]
}`

func TestImport(t *testing.T) {
	t.Run("valid record gets fresh identity", func(t *testing.T) {
		out, result, err := Import(nil, []byte("["+validRecord+"]"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 1 || result.Skipped != 0 {
			t.Fatalf("unexpected result: %+v", result)
		}
		char := out[0]
		if char.ID == "old-id" || char.ID == "" {
			t.Fatalf("expected fresh id, got %q", char.ID)
		}
		if char.UpdatedAt == 1700000000000 {
			t.Fatalf("expected fresh timestamp")
		}
		if char.Name != "丹恒・飲月" || char.RelicSets[0] != "Musketeer" {
			t.Fatalf("payload not preserved: %+v", char)
		}
	})

	t.Run("records missing required fields are skipped", func(t *testing.T) {
		batch := `[
			{"characterName": "A", "mainStats": {}},
			{"targetRelicSets": [], "mainStats": {}},
			{"characterName": "B", "targetRelicSets": []},
			` + validRecord + `
		]`
		out, result, err := Import(nil, []byte(batch))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 1 || result.Skipped != 3 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if len(out) != 1 {
			t.Fatalf("unexpected roster: %+v", out)
		}
	})

	t.Run("malformed element skips without aborting", func(t *testing.T) {
		batch := `[
			{"characterName": "A", "targetRelicSets": [], "mainStats": {"body": "not-a-list"}},
			` + validRecord + `
		]`
		_, result, err := Import(nil, []byte(batch))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 1 || result.Skipped != 1 {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("appends to the existing roster", func(t *testing.T) {
		existing := []domain.CharacterFilter{New("既存")}
		out, result, err := Import(existing, []byte("["+validRecord+"]"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 1 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if len(out) != 2 || out[0].Name != "既存" {
			t.Fatalf("existing entries disturbed: %+v", out)
		}
		if len(existing) != 1 {
			t.Fatalf("input mutated")
		}
	})

	t.Run("not an array", func(t *testing.T) {
		if _, _, err := Import(nil, []byte(`{"characterName": "A"}`)); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestExport(t *testing.T) {
	a := New("A")
	b := New("B")
	chars := []domain.CharacterFilter{a, b}

	t.Run("round trips through import", func(t *testing.T) {
		data, err := Export(chars)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, result, err := Import(nil, data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 2 || result.Skipped != 0 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if out[0].Name != "A" || out[1].Name != "B" {
			t.Fatalf("unexpected roster: %+v", out)
		}
	})

	t.Run("selects by id", func(t *testing.T) {
		data, err := Export(chars, b.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var decoded []domain.CharacterFilter
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("decoding export: %v", err)
		}
		if len(decoded) != 1 || decoded[0].Name != "B" {
			t.Fatalf("unexpected selection: %+v", decoded)
		}
	})
}
