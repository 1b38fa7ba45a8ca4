// Package store defines the persistence boundary: the whole roster and
// the whole catalog travel as single documents, no deltas. The engines
// never call into a Store themselves; commands load, compute, save.
package store

import (
	"context"

	"relichelper/internal/domain"
)

type Store interface {
	// LoadRoster returns the saved roster in its persisted order.
	// A store with no roster yet returns nil, nil.
	LoadRoster(ctx context.Context) ([]domain.CharacterFilter, error)
	// SaveRoster replaces the persisted roster with the given one.
	SaveRoster(ctx context.Context, roster []domain.CharacterFilter) error
	// LoadCatalog returns the saved set catalog, or nil, nil when the
	// store has none yet.
	LoadCatalog(ctx context.Context) (*domain.Catalog, error)
	// SaveCatalog replaces the persisted catalog with the given one.
	SaveCatalog(ctx context.Context, catalog *domain.Catalog) error
}
