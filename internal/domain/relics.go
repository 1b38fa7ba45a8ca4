package domain

import "strings"

// Category splits the relic catalog into the two top-level set families.
type Category string

const (
	CategoryCavern Category = "Cavern"
	CategoryPlanar Category = "Planar"
)

// ParseCategory resolves a category name, accepting the canonical name
// in any case plus the aliases "relic" and "ornament".
func ParseCategory(raw string) (Category, bool) {
	switch strings.ToLower(raw) {
	case "cavern", "relic":
		return CategoryCavern, true
	case "planar", "ornament":
		return CategoryPlanar, true
	}
	return "", false
}

// CategorySlots returns the two filter slots a category's sets occupy.
func CategorySlots(category Category) []Slot {
	if category == CategoryPlanar {
		return []Slot{SlotPlanarSphere, SlotLinkRope}
	}
	return []Slot{SlotBody, SlotFeet}
}

// RelicSet is one catalog entry. Identity is ID; Name may change freely
// because every other record references a set by ID only. Group is a
// display clustering number (sets farmed in the same place share one)
// with no effect on matching; zero means ungrouped.
type RelicSet struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"type"`
	Group    int      `json:"group,omitempty"`
}

// Catalog holds both set families, in the shape the relic data file uses.
type Catalog struct {
	RelicSets  []RelicSet `json:"relicSets"`
	PlanarSets []RelicSet `json:"planarSets"`
}

// Sets returns the catalog entries for one category. The returned slice
// aliases the catalog and must not be modified.
func (c *Catalog) Sets(category Category) []RelicSet {
	if category == CategoryPlanar {
		return c.PlanarSets
	}
	return c.RelicSets
}
