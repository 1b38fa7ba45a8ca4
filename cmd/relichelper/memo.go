package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"relichelper/internal/domain"
	"relichelper/internal/roster"
)

func memoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memo",
		Short: "Edit a character's status memo items",
	}
	cmd.AddCommand(memoAddCmd())
	cmd.AddCommand(memoRmCmd())
	cmd.AddCommand(memoShowCmd())
	return cmd
}

func parseModifierKind(raw string) (domain.ModifierKind, error) {
	switch strings.ToLower(raw) {
	case "base":
		return domain.ModifierBase, nil
	case "additional", "add'l":
		return domain.ModifierAdditional, nil
	}
	return "", fmt.Errorf("unknown modifier kind: %s", raw)
}

func parseModifierOperation(raw string) (domain.ModifierOperation, error) {
	switch strings.ToLower(raw) {
	case "add":
		return domain.OperationAdd, nil
	case "multiply", "mul":
		return domain.OperationMultiply, nil
	}
	return "", fmt.Errorf("unknown operation: %s", raw)
}

func memoAddCmd() *cobra.Command {
	var character string
	var stat string
	var value float64
	var kind string
	var operation string
	var inBattle bool
	var disabled bool
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Append a modifier to one stat's memo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMemoAdd(cmd, character, stat, args[0], value, kind, operation, inBattle, disabled)
		},
	}
	cmd.Flags().StringVar(&character, "char", "", "Character id or name")
	cmd.Flags().StringVar(&stat, "stat", "", "Stat kind the memo is attached to")
	cmd.Flags().Float64Var(&value, "value", 0, "Modifier value, a percentage for multiply")
	cmd.Flags().StringVar(&kind, "kind", "base", "Modifier layer: base or additional")
	cmd.Flags().StringVar(&operation, "op", "add", "Operation: add or multiply")
	cmd.Flags().BoolVar(&inBattle, "in-battle", true, "Count only while in battle")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "Add the item switched off")
	cmd.MarkFlagRequired("char")
	cmd.MarkFlagRequired("stat")
	cmd.MarkFlagRequired("value")
	return cmd
}

func runMemoAdd(cmd *cobra.Command, character, rawStat, name string, value float64, rawKind, rawOp string, inBattle, disabled bool) error {
	stat, ok := domain.ParseStatKind(rawStat)
	if !ok {
		return fmt.Errorf("unknown stat: %s", rawStat)
	}
	kind, err := parseModifierKind(rawKind)
	if err != nil {
		return err
	}
	operation, err := parseModifierOperation(rawOp)
	if err != nil {
		return err
	}

	item := domain.StatusItem{
		ID:        uuid.NewString(),
		Name:      name,
		Value:     value,
		Kind:      kind,
		Operation: operation,
		Enabled:   !disabled,
		InBattle:  inBattle,
	}
	return updateCharacter(character, func(char *domain.CharacterFilter) error {
		if char.StatusMemo == nil {
			char.StatusMemo = make(map[domain.StatKind][]domain.StatusItem)
		}
		char.StatusMemo[stat] = append(char.StatusMemo[stat], item)
		return nil
	})
}

func memoRmCmd() *cobra.Command {
	var character string
	var stat string
	cmd := &cobra.Command{
		Use:   "rm <item-id>",
		Short: "Remove a modifier from one stat's memo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMemoRm(cmd, character, stat, args[0])
		},
	}
	cmd.Flags().StringVar(&character, "char", "", "Character id or name")
	cmd.Flags().StringVar(&stat, "stat", "", "Stat kind the memo is attached to")
	cmd.MarkFlagRequired("char")
	cmd.MarkFlagRequired("stat")
	return cmd
}

func runMemoRm(cmd *cobra.Command, character, rawStat, itemID string) error {
	stat, ok := domain.ParseStatKind(rawStat)
	if !ok {
		return fmt.Errorf("unknown stat: %s", rawStat)
	}

	return updateCharacter(character, func(char *domain.CharacterFilter) error {
		items := char.StatusMemo[stat]
		for i, item := range items {
			if item.ID != itemID {
				continue
			}
			char.StatusMemo[stat] = append(items[:i], items[i+1:]...)
			if len(char.StatusMemo[stat]) == 0 {
				delete(char.StatusMemo, stat)
			}
			return nil
		}
		return fmt.Errorf("memo item not found: %s", itemID)
	})
}

func memoShowCmd() *cobra.Command {
	var character string
	var stat string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "List one stat's memo items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMemoShow(cmd, character, stat)
		},
	}
	cmd.Flags().StringVar(&character, "char", "", "Character id or name")
	cmd.Flags().StringVar(&stat, "stat", "", "Stat kind the memo is attached to")
	cmd.MarkFlagRequired("char")
	cmd.MarkFlagRequired("stat")
	return cmd
}

func runMemoShow(cmd *cobra.Command, character, rawStat string) error {
	stat, ok := domain.ParseStatKind(rawStat)
	if !ok {
		return fmt.Errorf("unknown stat: %s", rawStat)
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
	char, err := roster.Find(chars, character)
	if err != nil {
		return err
	}

	items := char.StatusMemo[stat]
	if len(items) == 0 {
		fmt.Fprintln(os.Stdout, "No memo items.")
		return nil
	}
	for _, item := range items {
		flags := make([]string, 0, 2)
		if !item.Enabled {
			flags = append(flags, "off")
		}
		if item.InBattle {
			flags = append(flags, "battle")
		}
		suffix := ""
		if len(flags) > 0 {
			suffix = " [" + strings.Join(flags, ",") + "]"
		}
		fmt.Fprintf(os.Stdout, "%s  %-10s %-8s %10.2f  %s%s\n",
			item.ID, item.Kind, item.Operation, item.Value, item.Name, suffix)
	}
	return nil
}
