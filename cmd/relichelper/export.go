package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"relichelper/internal/roster"
)

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export [character]...",
		Short: "Export roster entries as an importable JSON array",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}

func runExport(cmd *cobra.Command, keys []string, out string) error {
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

	data, err := roster.Export(chars, ids...)
	if err != nil {
		return err
	}
	if out == "" {
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}
	if err := os.WriteFile(out, data, 0o600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
