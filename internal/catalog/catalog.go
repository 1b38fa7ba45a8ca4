// Package catalog manages the relic-set catalog the roster references
// by id. References are weak: a character may point at a set that was
// deleted later, and every lookup falls back to the raw id as label
// instead of failing.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"relichelper/internal/domain"
)

var (
	ErrDuplicateID = errors.New("set id already in use")
	ErrNotFound    = errors.New("set not found")
	ErrMissingID   = errors.New("set id is required")
	ErrMissingName = errors.New("set name is required")
)

// Add inserts a new set into its category's list. The id must be unique
// across the whole catalog, both categories included.
func Add(c *domain.Catalog, set domain.RelicSet) error {
	if set.ID == "" {
		return ErrMissingID
	}
	if set.Name == "" {
		return ErrMissingName
	}
	if _, ok := find(c, set.ID); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, set.ID)
	}
	if set.Category == domain.CategoryPlanar {
		c.PlanarSets = append(c.PlanarSets, set)
	} else {
		set.Category = domain.CategoryCavern
		c.RelicSets = append(c.RelicSets, set)
	}
	return nil
}

// Rename updates a set's display name. Referencing characters are
// untouched because they hold ids, not names.
func Rename(c *domain.Catalog, id, name string) error {
	if name == "" {
		return ErrMissingName
	}
	set, ok := find(c, id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	set.Name = name
	return nil
}

// SetGroup updates a set's display grouping number; zero clears it.
func SetGroup(c *domain.Catalog, id string, group int) error {
	set, ok := find(c, id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	set.Group = group
	return nil
}

// Delete removes a set from whichever category holds it. Characters
// still referencing the id keep their dangling reference.
func Delete(c *domain.Catalog, id string) error {
	if removed := remove(&c.RelicSets, id); removed {
		return nil
	}
	if removed := remove(&c.PlanarSets, id); removed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Label resolves a set id to its display name, or to the raw id when
// the set no longer exists.
func Label(c *domain.Catalog, id string) string {
	if set, ok := find(c, id); ok {
		return set.Name
	}
	return id
}

// Has reports whether the catalog still contains the id.
func Has(c *domain.Catalog, id string) bool {
	_, ok := find(c, id)
	return ok
}

// Sorted returns a category's sets ordered by group ascending, then id,
// with ungrouped sets last.
func Sorted(sets []domain.RelicSet) []domain.RelicSet {
	out := append([]domain.RelicSet(nil), sets...)
	sort.SliceStable(out, func(i, j int) bool {
		gi, gj := groupKey(out[i].Group), groupKey(out[j].Group)
		if gi != gj {
			return gi < gj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func groupKey(group int) int {
	if group == 0 {
		return int(^uint(0) >> 1)
	}
	return group
}

func find(c *domain.Catalog, id string) (*domain.RelicSet, bool) {
	for i := range c.RelicSets {
		if c.RelicSets[i].ID == id {
			return &c.RelicSets[i], true
		}
	}
	for i := range c.PlanarSets {
		if c.PlanarSets[i].ID == id {
			return &c.PlanarSets[i], true
		}
	}
	return nil, false
}

func remove(sets *[]domain.RelicSet, id string) bool {
	for i := range *sets {
		if (*sets)[i].ID == id {
			*sets = append((*sets)[:i], (*sets)[i+1:]...)
			return true
		}
	}
	return false
}
