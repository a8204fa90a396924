// Package csvstore implements the repository source interfaces over CSV
// files on disk.
package csvstore

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/asakaida/landtree/internal/ingest"
)

// Store reads company relations and land ownership data from CSV files.
// Each call opens the file, streams it once, and closes it; the Store
// itself holds no open resources.
type Store struct {
	relationsPath string
	ownershipPath string
}

// New creates a Store over the given CSV file paths.
func New(relationsPath, ownershipPath string) *Store {
	return &Store{
		relationsPath: relationsPath,
		ownershipPath: ownershipPath,
	}
}

// Relations streams the company relations file.
func (s *Store) Relations(ctx context.Context, fn func(ingest.RelationRecord) error) error {
	f, err := os.Open(s.relationsPath)
	if err != nil {
		return fmt.Errorf("failed to open relations source: %w", err)
	}
	defer f.Close()

	reader := ingest.NewRelationReader(f)
	if err := reader.DiscardHeader(); err != nil {
		if err == io.EOF {
			return nil // empty source
		}
		return fmt.Errorf("failed to read relations source %s: %w", s.relationsPath, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read relations source %s: %w", s.relationsPath, err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// Ownerships streams the land ownership file.
func (s *Store) Ownerships(ctx context.Context, fn func(ingest.OwnershipRecord) error) error {
	f, err := os.Open(s.ownershipPath)
	if err != nil {
		return fmt.Errorf("failed to open ownership source: %w", err)
	}
	defer f.Close()

	reader := ingest.NewOwnershipReader(f)
	if err := reader.DiscardHeader(); err != nil {
		if err == io.EOF {
			return nil // empty source
		}
		return fmt.Errorf("failed to read ownership source %s: %w", s.ownershipPath, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read ownership source %s: %w", s.ownershipPath, err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
