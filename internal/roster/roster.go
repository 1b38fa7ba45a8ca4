// Package roster manipulates the ordered character-filter sequence.
// Roster order is user-controlled ranking, part of the persisted state,
// so every operation is index-preserving and returns a fresh slice.
package roster

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"relichelper/internal/domain"
)

var (
	ErrNotFound   = errors.New("character not found")
	ErrAmbiguous  = errors.New("name matches more than one character")
	ErrIndexRange = errors.New("index out of range")
)

// New creates a roster entry with a fresh id and current timestamp.
func New(name string) domain.CharacterFilter {
	return domain.CharacterFilter{
		ID:         uuid.NewString(),
		Name:       name,
		UpdatedAt:  time.Now().UnixMilli(),
		RelicSets:  []string{},
		PlanarSets: []string{},
		SubStats:   []domain.WeightedStat{},
	}
}

// Add appends char to the end of the roster.
func Add(roster []domain.CharacterFilter, char domain.CharacterFilter) []domain.CharacterFilter {
	out := append([]domain.CharacterFilter(nil), roster...)
	return append(out, char)
}

// Update applies mutate to the entry with the given id. The id and
// creation are preserved; UpdatedAt is refreshed.
func Update(roster []domain.CharacterFilter, id string, mutate func(*domain.CharacterFilter)) ([]domain.CharacterFilter, error) {
	out := append([]domain.CharacterFilter(nil), roster...)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		char := out[i].Clone()
		mutate(&char)
		char.ID = id
		char.UpdatedAt = time.Now().UnixMilli()
		out[i] = char
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Delete removes every entry whose id is listed. Unknown ids are
// ignored so a bulk delete never fails halfway.
func Delete(roster []domain.CharacterFilter, ids ...string) []domain.CharacterFilter {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	out := make([]domain.CharacterFilter, 0, len(roster))
	for _, char := range roster {
		if _, ok := drop[char.ID]; ok {
			continue
		}
		out = append(out, char)
	}
	return out
}

// Move relocates the entry at from to position to, preserving the
// relative order of everything else.
func Move(roster []domain.CharacterFilter, from, to int) ([]domain.CharacterFilter, error) {
	if from < 0 || from >= len(roster) {
		return nil, fmt.Errorf("%w: %d", ErrIndexRange, from)
	}
	if to < 0 || to >= len(roster) {
		return nil, fmt.Errorf("%w: %d", ErrIndexRange, to)
	}
	out := append([]domain.CharacterFilter(nil), roster...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	return append(out[:to], append([]domain.CharacterFilter{moved}, out[to:]...)...), nil
}

// Find resolves key as an id first, then as a display name. A name
// shared by several entries is ambiguous rather than first-match.
func Find(roster []domain.CharacterFilter, key string) (*domain.CharacterFilter, error) {
	for i := range roster {
		if roster[i].ID == key {
			return &roster[i], nil
		}
	}
	var match *domain.CharacterFilter
	for i := range roster {
		if roster[i].Name != key {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %s", ErrAmbiguous, key)
		}
		match = &roster[i]
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return match, nil
}

// Seed returns the example roster used on first run with no stored data.
func Seed() []domain.CharacterFilter {
	char := New("丹恒・飲月")
	char.RelicSets = []string{"Musketeer", "Wastelander"}
	char.PlanarSets = []string{"Rutilant"}
	char.MainStats = domain.MainStatPriority{
		Body: []domain.WeightedStat{
			{Stat: domain.StatCritRate, Operator: domain.OperatorTop},
			{Stat: domain.StatCritDMG, Operator: domain.OperatorGreaterEq},
		},
		Feet: []domain.WeightedStat{
			{Stat: domain.StatAttack, Operator: domain.OperatorTop},
			{Stat: domain.StatSpeed, Operator: domain.OperatorGreater},
		},
		PlanarSphere: []domain.WeightedStat{
			{Stat: domain.StatImaginaryDMG, Operator: domain.OperatorTop},
			{Stat: domain.StatAttack, Operator: domain.OperatorGreater},
		},
		LinkRope: []domain.WeightedStat{
			{Stat: domain.StatAttack, Operator: domain.OperatorTop},
			{Stat: domain.StatEnergyRegenRate, Operator: domain.OperatorGreater},
		},
	}
	char.SubStats = []domain.WeightedStat{
		{Stat: domain.StatCritRate, Operator: domain.OperatorTop},
		{Stat: domain.StatCritDMG, Operator: domain.OperatorEqual},
		{Stat: domain.StatAttack, Operator: domain.OperatorGreater},
		{Stat: domain.StatSpeed, Operator: domain.OperatorGreater},
	}
	return []domain.CharacterFilter{char}
}
