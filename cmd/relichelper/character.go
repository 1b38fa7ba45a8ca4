package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"relichelper/internal/catalog"
	"relichelper/internal/domain"
	"relichelper/internal/roster"
)

func characterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "character",
		Short: "Manage roster entries",
	}
	cmd.AddCommand(characterListCmd())
	cmd.AddCommand(characterShowCmd())
	cmd.AddCommand(characterAddCmd())
	cmd.AddCommand(characterRenameCmd())
	cmd.AddCommand(characterRmCmd())
	cmd.AddCommand(characterMoveCmd())
	return cmd
}

func characterListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster in its ranked order",
		Args:  cobra.NoArgs,
		RunE:  runCharacterList,
	}
}

func runCharacterList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	db, err := openStore()
	if err != nil {
		return err
	}

	chars, err := db.LoadRoster(ctx)
	if err != nil {
		return err
	}
	if len(chars) == 0 {
		fmt.Fprintln(os.Stdout, "No characters.")
		return nil
	}
	for i, char := range chars {
		updated := time.UnixMilli(char.UpdatedAt).Format("2006-01-02")
		fmt.Fprintf(os.Stdout, "%3d  %s  %s  (%s)\n", i, char.Name, char.ID, updated)
	}
	return nil
}

func characterShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <character>",
		Short: "Show one character's sets and stat priorities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCharacterShow(cmd, args[0])
		},
	}
}

func runCharacterShow(cmd *cobra.Command, key string) error {
	ctx := context.Background()
	db, err := openStore()
	if err != nil {
		return err
	}

	chars, err := db.LoadRoster(ctx)
	if err != nil {
		return err
	}
	char, err := roster.Find(chars, key)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(ctx, db)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s (%s)\n", char.Name, char.ID)
	fmt.Fprintf(os.Stdout, "Relic sets:  %s\n", setLine(cat, char.RelicSets))
	fmt.Fprintf(os.Stdout, "Planar sets: %s\n", setLine(cat, char.PlanarSets))
	for _, slot := range domain.FilterSlots() {
		fmt.Fprintf(os.Stdout, "%-8s %s\n", slot.Label(), priorityLine(char.MainStats.ForSlot(slot)))
	}
	fmt.Fprintf(os.Stdout, "サブ     %s\n", priorityLine(char.SubStats))

	for kind, items := range char.StatusMemo {
		fmt.Fprintf(os.Stdout, "Memo %s: %d items\n", kind.Label(), len(items))
	}
	return nil
}

func setLine(cat *domain.Catalog, ids []string) string {
	if len(ids) == 0 {
		return "(none)"
	}
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, catalog.Label(cat, id))
	}
	return strings.Join(labels, ", ")
}

func priorityLine(list []domain.WeightedStat) string {
	if len(list) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(list))
	for _, entry := range list {
		parts = append(parts, fmt.Sprintf("%s %s", entry.Operator, entry.Stat.Label()))
	}
	return strings.Join(parts, "  ")
}

func characterAddCmd() *cobra.Command {
	var relicSets []string
	var planarSets []string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a character to the end of the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCharacterAdd(cmd, args[0], relicSets, planarSets)
		},
	}
	cmd.Flags().StringSliceVar(&relicSets, "relic-set", nil, "Target cavern set id, repeatable")
	cmd.Flags().StringSliceVar(&planarSets, "planar-set", nil, "Target planar set id, repeatable")
	return cmd
}

func runCharacterAdd(cmd *cobra.Command, name string, relicSets, planarSets []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("character name is required")
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
	for _, id := range append(append([]string{}, relicSets...), planarSets...) {
		if !catalog.Has(cat, id) {
			return fmt.Errorf("unknown set: %s", id)
		}
	}

	char := roster.New(name)
	if len(relicSets) > 0 {
		char.RelicSets = relicSets
	}
	if len(planarSets) > 0 {
		char.PlanarSets = planarSets
	}
	if err := db.SaveRoster(ctx, roster.Add(chars, char)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Added %s (%s)\n", char.Name, char.ID)
	return nil
}

func characterRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <character> <new-name>",
		Short: "Rename a roster entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCharacterRename(cmd, args[0], args[1])
		},
	}
}

func runCharacterRename(cmd *cobra.Command, key, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("new name is required")
	}
	return updateCharacter(key, func(char *domain.CharacterFilter) error {
		char.Name = name
		return nil
	})
}

func characterRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <character>...",
		Short: "Remove roster entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCharacterRm(cmd, args)
		},
	}
}

func runCharacterRm(cmd *cobra.Command, keys []string) error {
	ctx := context.Background()
	db, err := openStore()
	if err != nil {
		return err
	}

	chars, err := db.LoadRoster(ctx)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		char, err := roster.Find(chars, key)
		if err != nil {
			return err
		}
		ids = append(ids, char.ID)
	}
	return db.SaveRoster(ctx, roster.Delete(chars, ids...))
}

func characterMoveCmd() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a roster entry to a new position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCharacterMove(cmd, from, to)
		},
	}
	cmd.Flags().IntVar(&from, "from", -1, "Current position")
	cmd.Flags().IntVar(&to, "to", -1, "Target position")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}

func runCharacterMove(cmd *cobra.Command, from, to int) error {
	ctx := context.Background()
	db, err := openStore()
	if err != nil {
		return err
	}

	chars, err := db.LoadRoster(ctx)
	if err != nil {
		return err
	}
	moved, err := roster.Move(chars, from, to)
	if err != nil {
		return err
	}
	return db.SaveRoster(ctx, moved)
}

// updateCharacter runs the load-find-mutate-save cycle shared by every
// command that edits one roster entry. A failed mutation saves nothing.
func updateCharacter(key string, mutate func(*domain.CharacterFilter) error) error {
	ctx := context.Background()
	db, err := openStore()
	if err != nil {
		return err
	}

	chars, err := db.LoadRoster(ctx)
	if err != nil {
		return err
	}
	char, err := roster.Find(chars, key)
	if err != nil {
		return err
	}

	var mutateErr error
	updated, err := roster.Update(chars, char.ID, func(char *domain.CharacterFilter) {
		mutateErr = mutate(char)
	})
	if err != nil {
		return err
	}
	if mutateErr != nil {
		return mutateErr
	}
	return db.SaveRoster(ctx, updated)
}
