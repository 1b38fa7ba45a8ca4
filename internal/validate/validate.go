// Package validate runs non-fatal diagnostics over the roster against
// the catalog: dangling set references, ineligible or duplicated
// priority stats, and broken operator bookkeeping. Findings are
// reported, never raised, so a broken record stays usable.
package validate

import (
	"errors"
	"fmt"

	"relichelper/internal/catalog"
	"relichelper/internal/domain"
	"relichelper/internal/priority"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeDanglingSetRef   = "dangling_set_reference"
	codeStatNotAllowed   = "stat_not_allowed"
	codeDuplicateStat    = "duplicate_stat"
	codeOperatorInvalid  = "operator_bookkeeping_invalid"
	codeDuplicateName    = "duplicate_character_name"
)

type Issue struct {
	Severity  Severity
	Code      string
	Message   string
	Character string
	Field     string
}

type Report struct {
	Issues []Issue
}

// Run checks every roster entry. Dangling set references are warnings
// (the raw id still renders as a label); list-shape violations are
// errors because the priority engine should never have produced them.
func Run(roster []domain.CharacterFilter, cat *domain.Catalog) *Report {
	report := &Report{Issues: make([]Issue, 0)}

	names := make(map[string]int)
	for _, char := range roster {
		names[char.Name]++
	}

	for _, char := range roster {
		if names[char.Name] > 1 {
			report.Issues = append(report.Issues, Issue{
				Severity:  SeverityWarn,
				Code:      codeDuplicateName,
				Message:   fmt.Sprintf("display name %q is shared by %d entries", char.Name, names[char.Name]),
				Character: char.Name,
			})
		}
		checkSetRefs(report, char, cat, "targetRelicSets", char.RelicSets)
		checkSetRefs(report, char, cat, "targetPlanarSets", char.PlanarSets)

		for _, slot := range domain.FilterSlots() {
			checkList(report, char, string(slot), char.MainStats.ForSlot(slot), domain.MainStatOptions(slot))
		}
		checkList(report, char, "subStats", char.SubStats, domain.SubStatOptions())
	}
	return report
}

func checkSetRefs(report *Report, char domain.CharacterFilter, cat *domain.Catalog, field string, ids []string) {
	for _, id := range ids {
		if catalog.Has(cat, id) {
			continue
		}
		report.Issues = append(report.Issues, Issue{
			Severity:  SeverityWarn,
			Code:      codeDanglingSetRef,
			Message:   fmt.Sprintf("references set %q which is no longer in the catalog", id),
			Character: char.Name,
			Field:     field,
		})
	}
}

func checkList(report *Report, char domain.CharacterFilter, field string, list []domain.WeightedStat, allowed []domain.StatKind) {
	if err := priority.Validate(list, allowed); err != nil {
		code := codeStatNotAllowed
		if errors.Is(err, priority.ErrDuplicateStat) {
			code = codeDuplicateStat
		}
		report.Issues = append(report.Issues, Issue{
			Severity:  SeverityError,
			Code:      code,
			Message:   err.Error(),
			Character: char.Name,
			Field:     field,
		})
	}
	if !priority.Normalized(list) {
		report.Issues = append(report.Issues, Issue{
			Severity:  SeverityError,
			Code:      codeOperatorInvalid,
			Message:   "operator assignment does not match list positions",
			Character: char.Name,
			Field:     field,
		})
	}
}
