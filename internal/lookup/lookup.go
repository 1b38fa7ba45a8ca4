// Package lookup regroups the character roster by relic set: for every
// set with at least one interested character it reports which main stat
// each character wants per slot and which sub-stat combination they
// chase, with optional pivot-based highlighting of correlated sub-stat
// groups.
package lookup

import (
	"sort"
	"strings"

	"relichelper/internal/domain"
)

// UnspecifiedLabel is the bucket for characters with no sub-stat priority.
const UnspecifiedLabel = "指定なし"

// Pivot selects one (slot, stat) main-stat bucket whose characters
// drive sub-stat highlighting.
type Pivot struct {
	Slot domain.Slot
	Stat domain.StatKind
}

// StatGroup is one bucket: a stat label and the characters listed under it.
type StatGroup struct {
	Stat        string   `json:"stat"`
	Characters  []string `json:"characters"`
	Highlighted bool     `json:"highlighted"`
}

// SlotGroup is the per-slot main-stat breakdown of one set.
type SlotGroup struct {
	Slot  domain.Slot `json:"slot"`
	Label string      `json:"label"`
	Stats []StatGroup `json:"stats"`
}

// SetBreakdown is the full report for one relic set.
type SetBreakdown struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Group           int               `json:"group,omitempty"`
	Slots           []SlotGroup       `json:"slots"`
	SubStats        []StatGroup       `json:"subStats"`
	TotalCharacters int               `json:"totalCharacters"`
	CharacterIDs    map[string]string `json:"characterIds"`
}

// Build produces one breakdown per catalog set of the given category
// that has at least one interested character. Sets sort by ascending
// group number with ungrouped sets after all grouped ones; bucket order
// is first-appearance order over the roster scan, so repeated runs over
// the same roster produce identical output.
func Build(roster []domain.CharacterFilter, sets []domain.RelicSet, category domain.Category, pivot *Pivot) []SetBreakdown {
	slots := domain.CategorySlots(category)

	var out []SetBreakdown
	for _, set := range sets {
		breakdown := buildSet(roster, set, category, slots)
		if breakdown.TotalCharacters == 0 {
			continue
		}
		applyPivot(&breakdown, pivot)
		out = append(out, breakdown)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return groupKey(out[i].Group) < groupKey(out[j].Group)
	})
	return out
}

func buildSet(roster []domain.CharacterFilter, set domain.RelicSet, category domain.Category, slots []domain.Slot) SetBreakdown {
	breakdown := SetBreakdown{
		ID:           set.ID,
		Name:         set.Name,
		Group:        set.Group,
		CharacterIDs: make(map[string]string),
	}

	slotBuckets := make([]*buckets, len(slots))
	for i := range slots {
		slotBuckets[i] = newBuckets()
	}
	subBuckets := newBuckets()
	seen := make(map[string]struct{})

	for _, char := range roster {
		if !containsID(char.TargetSets(category), set.ID) {
			continue
		}
		if _, ok := seen[char.Name]; !ok {
			seen[char.Name] = struct{}{}
			breakdown.TotalCharacters++
		}
		breakdown.CharacterIDs[char.Name] = char.ID

		for i, slot := range slots {
			for _, entry := range char.MainStats.ForSlot(slot) {
				slotBuckets[i].add(entry.Stat.Label(), char.Name)
			}
		}
		subBuckets.add(subStatLabel(char.SubStats), char.Name)
	}

	breakdown.Slots = make([]SlotGroup, len(slots))
	for i, slot := range slots {
		breakdown.Slots[i] = SlotGroup{
			Slot:  slot,
			Label: slot.Label(),
			Stats: slotBuckets[i].groups(),
		}
	}
	breakdown.SubStats = subBuckets.groups()
	return breakdown
}

// subStatLabel renders an entire sub-stat set as one bucket label. The
// kinds sort lexicographically first so entry order never fragments
// otherwise-identical combinations.
func subStatLabel(subStats []domain.WeightedStat) string {
	if len(subStats) == 0 {
		return UnspecifiedLabel
	}
	kinds := make([]string, 0, len(subStats))
	for _, entry := range subStats {
		kinds = append(kinds, string(entry.Stat))
	}
	sort.Strings(kinds)

	labels := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		labels = append(labels, domain.StatKind(kind).ShortLabel())
	}
	return strings.Join(labels, " / ")
}

// applyPivot marks every sub-stat bucket that shares a character with
// the pivot's main-stat bucket and stably moves the marked buckets
// ahead of the rest. Without a pivot, or when the pivot bucket does not
// exist in this set, every bucket stays highlighted in place.
func applyPivot(breakdown *SetBreakdown, pivot *Pivot) {
	pivotChars := pivotCharacters(breakdown, pivot)
	if pivotChars == nil {
		for i := range breakdown.SubStats {
			breakdown.SubStats[i].Highlighted = true
		}
		return
	}

	for i := range breakdown.SubStats {
		breakdown.SubStats[i].Highlighted = intersects(breakdown.SubStats[i].Characters, pivotChars)
	}

	ordered := make([]StatGroup, 0, len(breakdown.SubStats))
	for _, group := range breakdown.SubStats {
		if group.Highlighted {
			ordered = append(ordered, group)
		}
	}
	for _, group := range breakdown.SubStats {
		if !group.Highlighted {
			ordered = append(ordered, group)
		}
	}
	breakdown.SubStats = ordered
}

func pivotCharacters(breakdown *SetBreakdown, pivot *Pivot) map[string]struct{} {
	if pivot == nil {
		return nil
	}
	label := pivot.Stat.Label()
	for _, slot := range breakdown.Slots {
		if slot.Slot != pivot.Slot {
			continue
		}
		for _, group := range slot.Stats {
			if group.Stat != label {
				continue
			}
			chars := make(map[string]struct{}, len(group.Characters))
			for _, name := range group.Characters {
				chars[name] = struct{}{}
			}
			return chars
		}
	}
	return nil
}

func intersects(names []string, set map[string]struct{}) bool {
	for _, name := range names {
		if _, ok := set[name]; ok {
			return true
		}
	}
	return false
}

// buckets accumulates label → characters in first-appearance order,
// never adding the same character to one bucket twice.
type buckets struct {
	order   []string
	members map[string][]string
	present map[string]map[string]struct{}
}

func newBuckets() *buckets {
	return &buckets{
		members: make(map[string][]string),
		present: make(map[string]map[string]struct{}),
	}
}

func (b *buckets) add(label, character string) {
	if _, ok := b.members[label]; !ok {
		b.order = append(b.order, label)
		b.present[label] = make(map[string]struct{})
	}
	if _, ok := b.present[label][character]; ok {
		return
	}
	b.present[label][character] = struct{}{}
	b.members[label] = append(b.members[label], character)
}

func (b *buckets) groups() []StatGroup {
	out := make([]StatGroup, 0, len(b.order))
	for _, label := range b.order {
		out = append(out, StatGroup{Stat: label, Characters: b.members[label]})
	}
	return out
}

// groupKey sorts ungrouped sets (group 0) after every grouped set.
func groupKey(group int) int {
	if group == 0 {
		return int(^uint(0) >> 1)
	}
	return group
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
