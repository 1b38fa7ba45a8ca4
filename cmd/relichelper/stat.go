package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"relichelper/internal/domain"
	"relichelper/internal/priority"
)

func statCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Edit a character's stat priority lists",
	}
	cmd.AddCommand(statToggleCmd())
	cmd.AddCommand(statCycleCmd())
	cmd.AddCommand(statMoveCmd())
	return cmd
}

// pool identifies one editable priority list: a tracked main-stat slot
// or the sub-stat pool ("sub").
type pool struct {
	slot domain.Slot
	sub  bool
}

func parsePool(raw string) (pool, error) {
	if strings.EqualFold(raw, "sub") {
		return pool{sub: true}, nil
	}
	slot, ok := domain.ParseSlot(raw)
	if !ok {
		return pool{}, fmt.Errorf("unknown slot: %s", raw)
	}
	for _, tracked := range domain.FilterSlots() {
		if slot == tracked {
			return pool{slot: slot}, nil
		}
	}
	return pool{}, fmt.Errorf("slot %s has a fixed main stat", raw)
}

func (p pool) list(char *domain.CharacterFilter) []domain.WeightedStat {
	if p.sub {
		return char.SubStats
	}
	return char.MainStats.ForSlot(p.slot)
}

func (p pool) set(char *domain.CharacterFilter, list []domain.WeightedStat) {
	if p.sub {
		char.SubStats = list
		return
	}
	char.MainStats.SetSlot(p.slot, list)
}

func (p pool) allowed() []domain.StatKind {
	if p.sub {
		return domain.SubStatOptions()
	}
	return domain.MainStatOptions(p.slot)
}

func statToggleCmd() *cobra.Command {
	var character string
	cmd := &cobra.Command{
		Use:   "toggle <slot|sub> <stat>",
		Short: "Add a stat to a priority list, or remove it if present",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatToggle(cmd, character, args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&character, "char", "", "Character id or name")
	cmd.MarkFlagRequired("char")
	return cmd
}

func runStatToggle(cmd *cobra.Command, character, rawPool, rawStat string) error {
	p, err := parsePool(rawPool)
	if err != nil {
		return err
	}
	stat, ok := domain.ParseStatKind(rawStat)
	if !ok {
		return fmt.Errorf("unknown stat: %s", rawStat)
	}

	return updateCharacter(character, func(char *domain.CharacterFilter) error {
		list, err := priority.Toggle(p.list(char), stat, p.allowed())
		if err != nil {
			return err
		}
		p.set(char, list)
		return nil
	})
}

func statCycleCmd() *cobra.Command {
	var character string
	var index int
	cmd := &cobra.Command{
		Use:   "cycle <slot|sub>",
		Short: "Cycle the tie-break operator at one list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatCycle(cmd, character, args[0], index)
		},
	}
	cmd.Flags().StringVar(&character, "char", "", "Character id or name")
	cmd.Flags().IntVar(&index, "index", -1, "List position to cycle")
	cmd.MarkFlagRequired("char")
	cmd.MarkFlagRequired("index")
	return cmd
}

func runStatCycle(cmd *cobra.Command, character, rawPool string, index int) error {
	p, err := parsePool(rawPool)
	if err != nil {
		return err
	}

	return updateCharacter(character, func(char *domain.CharacterFilter) error {
		list, err := priority.CycleOperator(p.list(char), index)
		if err != nil {
			return err
		}
		p.set(char, list)
		return nil
	})
}

func statMoveCmd() *cobra.Command {
	var character string
	var from, to int
	cmd := &cobra.Command{
		Use:   "move <slot|sub>",
		Short: "Move a priority entry to a new position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatMove(cmd, character, args[0], from, to)
		},
	}
	cmd.Flags().StringVar(&character, "char", "", "Character id or name")
	cmd.Flags().IntVar(&from, "from", -1, "Current position")
	cmd.Flags().IntVar(&to, "to", -1, "Target position")
	cmd.MarkFlagRequired("char")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}

func runStatMove(cmd *cobra.Command, character, rawPool string, from, to int) error {
	p, err := parsePool(rawPool)
	if err != nil {
		return err
	}

	return updateCharacter(character, func(char *domain.CharacterFilter) error {
		list, err := priority.Reorder(p.list(char), from, to)
		if err != nil {
			return err
		}
		p.set(char, list)
		return nil
	})
}
