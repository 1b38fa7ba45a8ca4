package domain

// Operator describes how a priority entry relates to the entry above it.
// The entry at index 0 always carries OperatorTop; every later entry
// carries one of the comparison operators. The operator is advisory
// metadata for the reader, not a validated predicate.
type Operator string

const (
	OperatorTop       Operator = "-"
	OperatorGreater   Operator = ">"
	OperatorGreaterEq Operator = ">="
	OperatorEqual     Operator = "="
)

// WeightedStat is one entry in an ordered stat preference list.
type WeightedStat struct {
	Stat     StatKind `json:"stat"`
	Operator Operator `json:"operator"`
}

// MainStatPriority holds one ordered preference list per tracked slot.
type MainStatPriority struct {
	Body         []WeightedStat `json:"body"`
	Feet         []WeightedStat `json:"feet"`
	PlanarSphere []WeightedStat `json:"planarSphere"`
	LinkRope     []WeightedStat `json:"linkRope"`
}

// ForSlot returns the priority list tracked for slot, or nil for the
// slots a filter does not track.
func (m *MainStatPriority) ForSlot(slot Slot) []WeightedStat {
	switch slot {
	case SlotBody:
		return m.Body
	case SlotFeet:
		return m.Feet
	case SlotPlanarSphere:
		return m.PlanarSphere
	case SlotLinkRope:
		return m.LinkRope
	}
	return nil
}

// SetSlot replaces the priority list for slot. Untracked slots are ignored.
func (m *MainStatPriority) SetSlot(slot Slot, list []WeightedStat) {
	switch slot {
	case SlotBody:
		m.Body = list
	case SlotFeet:
		m.Feet = list
	case SlotPlanarSphere:
		m.PlanarSphere = list
	case SlotLinkRope:
		m.LinkRope = list
	}
}

// CharacterFilter is one roster entry: which sets and stats a character
// wants. JSON field names match the data files the desktop app writes,
// so existing backups import unchanged.
type CharacterFilter struct {
	ID         string                    `json:"id"`
	Name       string                    `json:"characterName"`
	UpdatedAt  int64                     `json:"updatedAt"`
	RelicSets  []string                  `json:"targetRelicSets"`
	PlanarSets []string                  `json:"targetPlanarSets"`
	MainStats  MainStatPriority          `json:"mainStats"`
	SubStats   []WeightedStat            `json:"subStats"`
	StatusMemo map[StatKind][]StatusItem `json:"statusMemo,omitempty"`
}

// TargetSets returns the set IDs the character wants for one category.
func (c *CharacterFilter) TargetSets(category Category) []string {
	if category == CategoryPlanar {
		return c.PlanarSets
	}
	return c.RelicSets
}

// Clone deep-copies the filter so callers can hand it to engines that
// promise not to mutate their inputs.
func (c *CharacterFilter) Clone() CharacterFilter {
	out := *c
	out.RelicSets = append([]string(nil), c.RelicSets...)
	out.PlanarSets = append([]string(nil), c.PlanarSets...)
	out.MainStats = MainStatPriority{
		Body:         append([]WeightedStat(nil), c.MainStats.Body...),
		Feet:         append([]WeightedStat(nil), c.MainStats.Feet...),
		PlanarSphere: append([]WeightedStat(nil), c.MainStats.PlanarSphere...),
		LinkRope:     append([]WeightedStat(nil), c.MainStats.LinkRope...),
	}
	out.SubStats = append([]WeightedStat(nil), c.SubStats...)
	if c.StatusMemo != nil {
		out.StatusMemo = make(map[StatKind][]StatusItem, len(c.StatusMemo))
		for kind, items := range c.StatusMemo {
			out.StatusMemo[kind] = append([]StatusItem(nil), items...)
		}
	}
	return out
}
