package domain

import (
	"encoding/json"
	"testing"
)

func TestMainStatOptions(t *testing.T) {
	cases := []struct {
		slot Slot
		want int
	}{
		{SlotHead, 1},
		{SlotHands, 1},
		{SlotBody, 7},
		{SlotFeet, 4},
		{SlotPlanarSphere, 10},
		{SlotLinkRope, 5},
	}
	for _, tc := range cases {
		if got := len(MainStatOptions(tc.slot)); got != tc.want {
			t.Fatalf("%s: got %d options, want %d", tc.slot, got, tc.want)
		}
	}
}

func TestParseStatKind(t *testing.T) {
	if kind, ok := ParseStatKind("CritRate"); !ok || kind != StatCritRate {
		t.Fatalf("unexpected parse: %v %v", kind, ok)
	}
	if _, ok := ParseStatKind("Luck"); ok {
		t.Fatalf("expected parse failure")
	}
}

func TestParseSlot(t *testing.T) {
	cases := []struct {
		raw  string
		want Slot
	}{
		{"body", SlotBody},
		{"Feet", SlotFeet},
		{"sphere", SlotPlanarSphere},
		{"PlanarSphere", SlotPlanarSphere},
		{"rope", SlotLinkRope},
	}
	for _, tc := range cases {
		got, ok := ParseSlot(tc.raw)
		if !ok || got != tc.want {
			t.Fatalf("%q: got %v %v, want %v", tc.raw, got, ok, tc.want)
		}
	}
	if _, ok := ParseSlot("weapon"); ok {
		t.Fatalf("expected parse failure")
	}
}

func TestParseCategory(t *testing.T) {
	if got, ok := ParseCategory("cavern"); !ok || got != CategoryCavern {
		t.Fatalf("unexpected parse: %v %v", got, ok)
	}
	if got, ok := ParseCategory("ornament"); !ok || got != CategoryPlanar {
		t.Fatalf("unexpected parse: %v %v", got, ok)
	}
	if _, ok := ParseCategory("weapon"); ok {
		t.Fatalf("expected parse failure")
	}
}

func TestLabels(t *testing.T) {
	if got := StatCritDMG.Label(); got != "会心ダメージ" {
		t.Fatalf("label: got %q", got)
	}
	if got := StatCritDMG.ShortLabel(); got != "会心ダメ" {
		t.Fatalf("short label: got %q", got)
	}
	if got := StatKind("Mystery").Label(); got != "Mystery" {
		t.Fatalf("expected raw fallback, got %q", got)
	}
	if got := SlotPlanarSphere.Label(); got != "次元界オーブ" {
		t.Fatalf("slot label: got %q", got)
	}
}

func TestStatusItemUnmarshal(t *testing.T) {
	t.Run("absent flags default to true", func(t *testing.T) {
		var item StatusItem
		data := `{"id": "m-1", "name": "基礎", "value": 100, "type": "Base", "operation": "Add"}`
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !item.Enabled || !item.InBattle {
			t.Fatalf("flags not defaulted: %+v", item)
		}
	})

	t.Run("explicit false survives", func(t *testing.T) {
		var item StatusItem
		data := `{"id": "m-1", "value": 1, "type": "Base", "operation": "Add", "enabled": false, "isInBattle": false}`
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Enabled || item.InBattle {
			t.Fatalf("flags overwritten: %+v", item)
		}
	})
}

func TestCharacterFilterClone(t *testing.T) {
	char := CharacterFilter{
		ID:        "c-1",
		RelicSets: []string{"Musketeer"},
		MainStats: MainStatPriority{
			Body: []WeightedStat{{Stat: StatCritRate, Operator: OperatorTop}},
		},
		SubStats: []WeightedStat{{Stat: StatSpeed, Operator: OperatorTop}},
		StatusMemo: map[StatKind][]StatusItem{
			StatAttack: {{ID: "m-1", Value: 100}},
		},
	}
	clone := char.Clone()
	clone.RelicSets[0] = "Changed"
	clone.MainStats.Body[0].Stat = StatHP
	clone.SubStats[0].Stat = StatHP
	clone.StatusMemo[StatAttack][0].Value = 1

	if char.RelicSets[0] != "Musketeer" {
		t.Fatalf("relic sets shared with clone")
	}
	if char.MainStats.Body[0].Stat != StatCritRate {
		t.Fatalf("main stats shared with clone")
	}
	if char.SubStats[0].Stat != StatSpeed {
		t.Fatalf("sub stats shared with clone")
	}
	if char.StatusMemo[StatAttack][0].Value != 100 {
		t.Fatalf("status memo shared with clone")
	}
}

func TestCharacterFilterJSONFields(t *testing.T) {
	char := CharacterFilter{ID: "c-1", Name: "A", RelicSets: []string{}, PlanarSets: []string{}}
	data, err := json.Marshal(char)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"characterName", "targetRelicSets", "targetPlanarSets", "mainStats", "subStats", "updatedAt"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing field %q in %s", key, data)
		}
	}
}
