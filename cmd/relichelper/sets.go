package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"relichelper/internal/catalog"
	"relichelper/internal/domain"
)

func setsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "Manage the relic set catalog",
	}
	cmd.AddCommand(setsListCmd())
	cmd.AddCommand(setsAddCmd())
	cmd.AddCommand(setsSetCmd())
	cmd.AddCommand(setsRmCmd())
	return cmd
}

func setsListCmd() *cobra.Command {
	var rawCategory string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog sets grouped by farming location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetsList(cmd, rawCategory)
		},
	}
	cmd.Flags().StringVar(&rawCategory, "category", "", "cavern or planar; empty lists both")
	return cmd
}

func runSetsList(cmd *cobra.Command, rawCategory string) error {
	ctx := context.Background()
	db, err := openStore()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(ctx, db)
	if err != nil {
		return err
	}

	categories := []domain.Category{domain.CategoryCavern, domain.CategoryPlanar}
	if rawCategory != "" {
		category, ok := domain.ParseCategory(rawCategory)
		if !ok {
			return fmt.Errorf("unknown category: %s", rawCategory)
		}
		categories = []domain.Category{category}
	}

	for _, category := range categories {
		fmt.Fprintf(os.Stdout, "%s:\n", category)
		for _, set := range catalog.Sorted(cat.Sets(category)) {
			group := "  -"
			if set.Group > 0 {
				group = fmt.Sprintf("%3d", set.Group)
			}
			fmt.Fprintf(os.Stdout, "  %s  %-16s %s\n", group, set.ID, set.Name)
		}
	}
	return nil
}

func setsAddCmd() *cobra.Command {
	var rawCategory string
	var group int
	cmd := &cobra.Command{
		Use:   "add <id> <name>",
		Short: "Add a set to the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetsAdd(cmd, args[0], args[1], rawCategory, group)
		},
	}
	cmd.Flags().StringVar(&rawCategory, "category", "cavern", "cavern or planar")
	cmd.Flags().IntVar(&group, "group", 0, "Farming location group number")
	return cmd
}

func runSetsAdd(cmd *cobra.Command, id, name, rawCategory string, group int) error {
	category, ok := domain.ParseCategory(rawCategory)
	if !ok {
		return fmt.Errorf("unknown category: %s", rawCategory)
	}
	return updateCatalog(func(cat *domain.Catalog) error {
		return catalog.Add(cat, domain.RelicSet{
			ID:       id,
			Name:     name,
			Category: category,
			Group:    group,
		})
	})
}

func setsSetCmd() *cobra.Command {
	var name string
	var group int
	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Update a set's name or group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetsSet(cmd, args[0], name, group)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().IntVar(&group, "group", -1, "New group number; 0 clears the group")
	return cmd
}

func runSetsSet(cmd *cobra.Command, id, name string, group int) error {
	if name == "" && group < 0 {
		return fmt.Errorf("nothing to update: pass --name or --group")
	}
	return updateCatalog(func(cat *domain.Catalog) error {
		if name != "" {
			if err := catalog.Rename(cat, id, name); err != nil {
				return err
			}
		}
		if group >= 0 {
			if err := catalog.SetGroup(cat, id, group); err != nil {
				return err
			}
		}
		return nil
	})
}

func setsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a set from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetsRm(cmd, args[0])
		},
	}
}

func runSetsRm(cmd *cobra.Command, id string) error {
	return updateCatalog(func(cat *domain.Catalog) error {
		return catalog.Delete(cat, id)
	})
}

func updateCatalog(mutate func(*domain.Catalog) error) error {
	ctx := context.Background()
	db, err := openStore()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(ctx, db)
	if err != nil {
		return err
	}
	if err := mutate(cat); err != nil {
		return err
	}
	return db.SaveCatalog(ctx, cat)
}
