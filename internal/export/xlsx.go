// Package export renders reverse-lookup results as an xlsx workbook,
// one sheet per relic category.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"relichelper/internal/domain"
	"relichelper/internal/lookup"
)

const (
	cavernSheet = "Cavern Relics"
	planarSheet = "Planar Ornaments"
)

// WriteLookupXLSX writes both category breakdowns to path. Existing
// files are overwritten.
func WriteLookupXLSX(path string, cavern, planar []lookup.SetBreakdown) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", cavernSheet); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	if _, err := f.NewSheet(planarSheet); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	if err := writeSheet(f, cavernSheet, cavern, headerStyle); err != nil {
		return err
	}
	if err := writeSheet(f, planarSheet, planar, headerStyle); err != nil {
		return err
	}

	if idx, err := f.GetSheetIndex(cavernSheet); err == nil {
		f.SetActiveSheet(idx)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, sets []lookup.SetBreakdown, headerStyle int) error {
	f.SetCellValue(sheet, "A1", "Set")
	f.SetCellValue(sheet, "B1", "Group")
	f.SetCellValue(sheet, "C1", "Slot")
	f.SetCellValue(sheet, "D1", "Main Stat")
	f.SetCellValue(sheet, "E1", "Characters")
	if err := f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("writing sheet %s: %w", sheet, err)
	}

	row := 1
	for _, set := range sets {
		group := ""
		if set.Group > 0 {
			group = fmt.Sprintf("%d", set.Group)
		}
		for _, slot := range set.Slots {
			for _, stat := range slot.Stats {
				row++
				f.SetCellValue(sheet, fmt.Sprintf("A%d", row), set.Name)
				f.SetCellValue(sheet, fmt.Sprintf("B%d", row), group)
				f.SetCellValue(sheet, fmt.Sprintf("C%d", row), slot.Label)
				f.SetCellValue(sheet, fmt.Sprintf("D%d", row), stat.Stat)
				f.SetCellValue(sheet, fmt.Sprintf("E%d", row), strings.Join(stat.Characters, ", "))
			}
		}
		for _, combo := range set.SubStats {
			row++
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), set.Name)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), group)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "サブステータス")
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), combo.Stat)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), strings.Join(combo.Characters, ", "))
		}
	}
	return nil
}

// SheetName returns the workbook sheet used for a category.
func SheetName(category domain.Category) string {
	if category == domain.CategoryPlanar {
		return planarSheet
	}
	return cavernSheet
}
