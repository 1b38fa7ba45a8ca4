package domain

// statLabels maps each stat kind to its Japanese display label.
var statLabels = map[StatKind]string{
	StatHP:              "HP",
	StatAttack:          "攻撃力",
	StatDefense:         "防御力",
	StatSpeed:           "速度",
	StatCritRate:        "会心率",
	StatCritDMG:         "会心ダメージ",
	StatBreakEffect:     "撃破特効",
	StatOutgoingHealing: "治癒量",
	StatEnergyRegenRate: "EP回復効率",
	StatEffectHitRate:   "効果命中",
	StatEffectRes:       "効果抵抗",
	StatPhysicalDMG:     "物理与ダメージ",
	StatFireDMG:         "炎属性与ダメージ",
	StatIceDMG:          "氷属性与ダメージ",
	StatLightningDMG:    "雷属性与ダメージ",
	StatWindDMG:         "風属性与ダメージ",
	StatQuantumDMG:      "量子属性与ダメージ",
	StatImaginaryDMG:    "虚数属性与ダメージ",
}

var slotLabels = map[Slot]string{
	SlotHead:         "頭部",
	SlotHands:        "両手",
	SlotBody:         "胴体",
	SlotFeet:         "脚部",
	SlotPlanarSphere: "次元界オーブ",
	SlotLinkRope:     "連結縄",
}

// Label returns the display label for a stat kind, falling back to the
// raw kind for anything unknown.
func (k StatKind) Label() string {
	if label, ok := statLabels[k]; ok {
		return label
	}
	return string(k)
}

// ShortLabel is Label with the abbreviation used inside sub-stat
// combination labels, where the full CritDMG label is too wide.
func (k StatKind) ShortLabel() string {
	if k == StatCritDMG {
		return "会心ダメ"
	}
	return k.Label()
}

// Label returns the display label for a slot, falling back to the raw name.
func (s Slot) Label() string {
	if label, ok := slotLabels[s]; ok {
		return label
	}
	return string(s)
}
