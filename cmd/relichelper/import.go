package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"relichelper/internal/roster"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Append characters from an exported JSON array",
		Long:  "Appends every valid character in the file to the roster. Records missing required fields are skipped; valid neighbors still import. Pass - to read stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0])
		},
	}
	return cmd
}

func runImport(cmd *cobra.Command, path string) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
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

	merged, result, err := roster.Import(chars, data)
	if err != nil {
		return err
	}
	if err := db.SaveRoster(ctx, merged); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Imported %d characters", result.Imported)
	if result.Skipped > 0 {
		fmt.Fprintf(os.Stdout, ", skipped %d invalid records", result.Skipped)
	}
	fmt.Fprintln(os.Stdout)
	return nil
}
