package domain

import "encoding/json"

// ModifierKind selects which layer of the status calculation an item
// belongs to: Base modifies the foundational value, Additional layers
// on top of the base total.
type ModifierKind string

const (
	ModifierBase       ModifierKind = "Base"
	ModifierAdditional ModifierKind = "Additional"
)

// ModifierOperation is how an item's value applies: a flat addition or a
// percentage of the layer it modifies.
type ModifierOperation string

const (
	OperationAdd      ModifierOperation = "Add"
	OperationMultiply ModifierOperation = "Multiply"
)

// StatusItem is one entry of a status memo: a named modifier over one
// derived stat. The first Base item in a list is the base value itself;
// by convention it carries InBattle=false so the status-screen
// computation includes it.
type StatusItem struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Value     float64           `json:"value"`
	Kind      ModifierKind      `json:"type"`
	Operation ModifierOperation `json:"operation"`
	Enabled   bool              `json:"enabled"`
	InBattle  bool              `json:"isInBattle"`
}

// UnmarshalJSON defaults Enabled and InBattle to true when the fields
// are absent, matching how the desktop app treats undefined flags.
func (s *StatusItem) UnmarshalJSON(data []byte) error {
	type raw StatusItem
	tmp := raw{Enabled: true, InBattle: true}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*s = StatusItem(tmp)
	return nil
}
