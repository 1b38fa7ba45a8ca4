package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"relichelper/internal/domain"
	"relichelper/internal/export"
	"relichelper/internal/lookup"
)

func lookupCmd() *cobra.Command {
	var rawCategory string
	var pivotSlot string
	var pivotStat string
	var asJSON bool
	var xlsxPath string
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Group the roster by relic set",
		Long:  "Lists, per relic set, which main stat every interested character wants in each slot and which sub-stat combination they chase. A pivot reorders each set's sub-stat groups so the ones correlated with the pivot bucket come first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, rawCategory, pivotSlot, pivotStat, asJSON, xlsxPath)
		},
	}
	cmd.Flags().StringVar(&rawCategory, "category", "cavern", "cavern or planar")
	cmd.Flags().StringVar(&pivotSlot, "pivot-slot", "", "Slot of the main-stat bucket to pivot on")
	cmd.Flags().StringVar(&pivotStat, "pivot-stat", "", "Stat of the main-stat bucket to pivot on")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the breakdown as JSON")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write both categories to an xlsx workbook")
	return cmd
}

func runLookup(cmd *cobra.Command, rawCategory, pivotSlot, pivotStat string, asJSON bool, xlsxPath string) error {
	category, ok := domain.ParseCategory(rawCategory)
	if !ok {
		return fmt.Errorf("unknown category: %s", rawCategory)
	}

	var pivot *lookup.Pivot
	if pivotSlot != "" || pivotStat != "" {
		slot, ok := domain.ParseSlot(pivotSlot)
		if !ok {
			return fmt.Errorf("unknown pivot slot: %s", pivotSlot)
		}
		stat, ok := domain.ParseStatKind(pivotStat)
		if !ok {
			return fmt.Errorf("unknown pivot stat: %s", pivotStat)
		}
		pivot = &lookup.Pivot{Slot: slot, Stat: stat}
	}

	ctx := context.Background()
	db, err := openStore()
	if err != nil {
		return err
	}
	chars, err := db.LoadRoster(ctx)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(ctx, db)
	if err != nil {
		return err
	}

	if xlsxPath != "" {
		cavern := lookup.Build(chars, cat.Sets(domain.CategoryCavern), domain.CategoryCavern, pivot)
		planar := lookup.Build(chars, cat.Sets(domain.CategoryPlanar), domain.CategoryPlanar, pivot)
		if err := export.WriteLookupXLSX(xlsxPath, cavern, planar); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", xlsxPath)
		return nil
	}

	sets := lookup.Build(chars, cat.Sets(category), category, pivot)
	if asJSON {
		data, err := json.MarshalIndent(sets, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding breakdown: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if len(sets) == 0 {
		fmt.Fprintln(os.Stdout, "No characters target any set in this category.")
		return nil
	}
	printBreakdowns(sets, pivot != nil)
	return nil
}

func printBreakdowns(sets []lookup.SetBreakdown, pivoted bool) {
	for i, set := range sets {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		header := set.Name
		if set.Group > 0 {
			header = fmt.Sprintf("%s  [group %d]", set.Name, set.Group)
		}
		fmt.Fprintf(os.Stdout, "%s  (%d characters)\n", header, set.TotalCharacters)

		for _, slot := range set.Slots {
			fmt.Fprintf(os.Stdout, "  %s:\n", slot.Label)
			for _, group := range slot.Stats {
				fmt.Fprintf(os.Stdout, "    %-12s %s\n", group.Stat, strings.Join(group.Characters, ", "))
			}
		}

		fmt.Fprintln(os.Stdout, "  サブステータス:")
		for _, group := range set.SubStats {
			marker := "  "
			if pivoted && group.Highlighted {
				marker = "* "
			}
			fmt.Fprintf(os.Stdout, "  %s%-32s %s\n", marker, group.Stat, strings.Join(group.Characters, ", "))
		}
	}
}
