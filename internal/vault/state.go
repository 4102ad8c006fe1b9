package vault

import (
	"sort"

	"github.com/dsavelev/filevault/internal/models"
)

// state is the single in-process container for all four collections. It is
// owned collectively by the ledger, file store and activity log; nothing
// else mutates it.
type state struct {
	files      map[string]*models.StoredFile
	shares     []*models.ShareGrant
	logs       []*models.AccessLogEntry
	identities []*models.Identity
}

func newState(snap *models.Snapshot) *state {
	st := &state{
		files:      make(map[string]*models.StoredFile, len(snap.Files)),
		shares:     snap.Shares,
		logs:       snap.Logs,
		identities: snap.Identities,
	}
	for _, f := range snap.Files {
		st.files[f.ID] = f
	}
	return st
}

// toSnapshot flattens the state for a full save. Files are ordered by
// creation time so snapshots stay stable across saves.
func (st *state) toSnapshot() *models.Snapshot {
	files := make([]*models.StoredFile, 0, len(st.files))
	for _, f := range st.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].CreatedAt.Equal(files[j].CreatedAt) {
			return files[i].ID < files[j].ID
		}
		return files[i].CreatedAt.Before(files[j].CreatedAt)
	})

	return &models.Snapshot{
		Files:      files,
		Shares:     st.shares,
		Logs:       st.logs,
		Identities: st.identities,
	}
}
