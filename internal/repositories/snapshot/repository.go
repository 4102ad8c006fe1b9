// Package snapshot persists the vault state as a whole. Every save writes
// all four collections (files, shares, access logs, identities) and every
// load reads them back; writes are last-writer-wins, never incremental.
package snapshot

import (
	"context"

	"github.com/dsavelev/filevault/internal/models"
)

// Repository is the persistence contract the vault depends on.
type Repository interface {
	// Load reads the full snapshot. An empty store yields an empty
	// snapshot, not an error.
	Load(ctx context.Context) (*models.Snapshot, error)

	// Save atomically replaces the stored snapshot with s.
	Save(ctx context.Context, s *models.Snapshot) error

	// Close releases the backing store.
	Close() error
}
