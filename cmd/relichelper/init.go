package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"relichelper/internal/catalog"
	"relichelper/internal/config"
	"relichelper/internal/roster"
	"relichelper/internal/store/jsonfile"
)

func initCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the data directory with the built-in set catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "Also create an example roster entry")
	return cmd
}

func runInit(cmd *cobra.Command, seed bool) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	db := jsonfile.New(cfg.DataDir, cfg.RosterFile, cfg.CatalogFile)

	existing, err := db.LoadCatalog(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%s already initialized", cfg.DataDir)
	}
	if err := db.SaveCatalog(ctx, catalog.Default()); err != nil {
		return err
	}

	if seed {
		chars, err := db.LoadRoster(ctx)
		if err != nil {
			return err
		}
		if len(chars) == 0 {
			if err := db.SaveRoster(ctx, roster.Seed()); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(os.Stdout, "Initialized %s\n", cfg.DataDir)
	return nil
}
