package main

import (
	"context"

	"relichelper/internal/catalog"
	"relichelper/internal/config"
	"relichelper/internal/domain"
	"relichelper/internal/store"
	"relichelper/internal/store/jsonfile"
)

func openStore() (store.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return jsonfile.New(cfg.DataDir, cfg.RosterFile, cfg.CatalogFile), nil
}

// loadCatalog falls back to the built-in catalog when none is saved, so
// every command works before init has run.
func loadCatalog(ctx context.Context, db store.Store) (*domain.Catalog, error) {
	cat, err := db.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		cat = catalog.Default()
	}
	return cat, nil
}
