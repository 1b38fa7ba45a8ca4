// Package jsonfile persists each collection as one indented JSON
// document in the data directory, the same layout the desktop app used
// for its save files.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"relichelper/internal/domain"
)

type Store struct {
	dir         string
	rosterFile  string
	catalogFile string
}

func New(dir, rosterFile, catalogFile string) *Store {
	return &Store{dir: dir, rosterFile: rosterFile, catalogFile: catalogFile}
}

func (s *Store) LoadRoster(ctx context.Context) ([]domain.CharacterFilter, error) {
	data, err := s.read(s.rosterFile)
	if err != nil || data == nil {
		return nil, err
	}
	var roster []domain.CharacterFilter
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}
	return roster, nil
}

func (s *Store) SaveRoster(ctx context.Context, roster []domain.CharacterFilter) error {
	if roster == nil {
		roster = []domain.CharacterFilter{}
	}
	data, err := json.MarshalIndent(roster, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding roster: %w", err)
	}
	return s.write(s.rosterFile, data)
}

func (s *Store) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	data, err := s.read(s.catalogFile)
	if err != nil || data == nil {
		return nil, err
	}
	var catalog domain.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return &catalog, nil
}

func (s *Store) SaveCatalog(ctx context.Context, catalog *domain.Catalog) error {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return s.write(s.catalogFile, data)
}

// read returns nil, nil for a file that does not exist yet: a missing
// collection is a first run, not an error.
func (s *Store) read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// write replaces the document atomically: the new content lands in a
// temp file first so a crash mid-write cannot truncate the collection.
func (s *Store) write(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}
