package domain

import "strings"

// StatKind identifies one of the stats a relic can roll or boost.
type StatKind string

const (
	StatHP              StatKind = "HP"
	StatAttack          StatKind = "Attack"
	StatDefense         StatKind = "Defense"
	StatSpeed           StatKind = "Speed"
	StatCritRate        StatKind = "CritRate"
	StatCritDMG         StatKind = "CritDMG"
	StatBreakEffect     StatKind = "BreakEffect"
	StatOutgoingHealing StatKind = "OutgoingHealing"
	StatEnergyRegenRate StatKind = "EnergyRegenRate"
	StatEffectHitRate   StatKind = "EffectHitRate"
	StatEffectRes       StatKind = "EffectRes"
	StatPhysicalDMG     StatKind = "PhysicalDMG"
	StatFireDMG         StatKind = "FireDMG"
	StatIceDMG          StatKind = "IceDMG"
	StatLightningDMG    StatKind = "LightningDMG"
	StatWindDMG         StatKind = "WindDMG"
	StatQuantumDMG      StatKind = "QuantumDMG"
	StatImaginaryDMG    StatKind = "ImaginaryDMG"
)

// Slot is one of the six relic positions a character equips.
type Slot string

const (
	SlotHead         Slot = "Head"
	SlotHands        Slot = "Hands"
	SlotBody         Slot = "Body"
	SlotFeet         Slot = "Feet"
	SlotPlanarSphere Slot = "PlanarSphere"
	SlotLinkRope     Slot = "LinkRope"
)

// mainStatOptions is the fixed table of main stats each slot can roll.
// Head and Hands always roll the same stat, so filters never track them,
// but the table keeps the full picture in one place.
var mainStatOptions = map[Slot][]StatKind{
	SlotHead:  {StatHP},
	SlotHands: {StatAttack},
	SlotBody: {
		StatHP, StatAttack, StatDefense, StatCritRate, StatCritDMG,
		StatOutgoingHealing, StatEffectHitRate,
	},
	SlotFeet: {StatHP, StatAttack, StatDefense, StatSpeed},
	SlotPlanarSphere: {
		StatHP, StatAttack, StatDefense, StatPhysicalDMG, StatFireDMG,
		StatIceDMG, StatLightningDMG, StatWindDMG, StatQuantumDMG, StatImaginaryDMG,
	},
	SlotLinkRope: {StatHP, StatAttack, StatDefense, StatBreakEffect, StatEnergyRegenRate},
}

// subStatOptions is the pool a sub-stat priority list may draw from.
var subStatOptions = []StatKind{
	StatHP, StatAttack, StatDefense, StatSpeed, StatCritRate, StatCritDMG,
	StatBreakEffect, StatEffectHitRate, StatEffectRes,
}

// MainStatOptions returns the stats eligible as a main stat for slot.
// The returned slice must not be modified.
func MainStatOptions(slot Slot) []StatKind {
	return mainStatOptions[slot]
}

// SubStatOptions returns the stats eligible in a sub-stat priority list.
// The returned slice must not be modified.
func SubStatOptions() []StatKind {
	return subStatOptions
}

// FilterSlots lists the slots a character filter tracks main stats for.
func FilterSlots() []Slot {
	return []Slot{SlotBody, SlotFeet, SlotPlanarSphere, SlotLinkRope}
}

// ParseStatKind validates a raw stat name against the known kinds.
func ParseStatKind(raw string) (StatKind, bool) {
	kind := StatKind(raw)
	if _, ok := statLabels[kind]; ok {
		return kind, true
	}
	return "", false
}

// ParseSlot resolves a slot name, accepting the canonical name in any
// case plus the short aliases "sphere" and "rope".
func ParseSlot(raw string) (Slot, bool) {
	switch strings.ToLower(raw) {
	case "head":
		return SlotHead, true
	case "hands":
		return SlotHands, true
	case "body":
		return SlotBody, true
	case "feet":
		return SlotFeet, true
	case "planarsphere", "sphere":
		return SlotPlanarSphere, true
	case "linkrope", "rope":
		return SlotLinkRope, true
	}
	return "", false
}
