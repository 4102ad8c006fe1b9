package snapshot

import (
	"context"

	"github.com/dsavelev/filevault/internal/models"
)

// MemoryRepository keeps the snapshot in process memory. Used by tests and
// for ephemeral runs; contents are lost on exit.
type MemoryRepository struct {
	saved *models.Snapshot

	// SaveErr, when set, is returned by every Save. Lets tests exercise the
	// at-risk persistence path.
	SaveErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	if r.saved == nil {
		return &models.Snapshot{}, nil
	}
	return copySnapshot(r.saved), nil
}

func (r *MemoryRepository) Save(ctx context.Context, s *models.Snapshot) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.saved = copySnapshot(s)
	return nil
}

func (r *MemoryRepository) Close() error {
	return nil
}

// copySnapshot clones the snapshot so later in-memory mutations cannot leak
// into (or out of) the stored copy.
func copySnapshot(s *models.Snapshot) *models.Snapshot {
	out := &models.Snapshot{}

	for _, f := range s.Files {
		c := *f
		c.SharedWith = append([]string(nil), f.SharedWith...)
		out.Files = append(out.Files, &c)
	}
	for _, g := range s.Shares {
		c := *g
		if g.ExpiresAt != nil {
			t := *g.ExpiresAt
			c.ExpiresAt = &t
		}
		out.Shares = append(out.Shares, &c)
	}
	for _, l := range s.Logs {
		c := *l
		out.Logs = append(out.Logs, &c)
	}
	for _, id := range s.Identities {
		c := *id
		out.Identities = append(out.Identities, &c)
	}

	return out
}
