package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"relichelper/internal/domain"
	"relichelper/internal/roster"
	"relichelper/internal/status"
)

func calcCmd() *cobra.Command {
	var character string
	var stat string
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the layered totals of one stat's memo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, character, stat)
		},
	}
	cmd.Flags().StringVar(&character, "char", "", "Character id or name")
	cmd.Flags().StringVar(&stat, "stat", "", "Stat kind the memo is attached to")
	cmd.MarkFlagRequired("char")
	cmd.MarkFlagRequired("stat")
	return cmd
}

func runCalc(cmd *cobra.Command, character, rawStat string) error {
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

	result := status.Calculate(char.StatusMemo[stat])
	fmt.Fprintf(os.Stdout, "%s %s\n", char.Name, stat.Label())
	fmt.Fprintf(os.Stdout, "Base:          %.2f\n", result.BaseTotal)
	fmt.Fprintf(os.Stdout, "Final:         %.2f\n", result.FinalTotal)
	fmt.Fprintf(os.Stdout, "Status screen: %.2f\n", result.StatusScreenFinal)
	return nil
}
