package vault

import (
	"sort"

	"github.com/dsavelev/filevault/internal/models"
)

// ActivityLog is the append-only record of file access. Entries are never
// edited or removed, except as a cascade of deleting their file.
type ActivityLog struct {
	v *Vault
}

// append records an action against a file. It cannot fail: the action
// already happened, and a missed entry only degrades auditability. The save
// happens with the operation that produced the entry.
func (a *ActivityLog) append(fileID, userID string, action models.Action) {
	a.v.state.logs = append(a.v.state.logs, &models.AccessLogEntry{
		FileID:    fileID,
		UserID:    userID,
		Action:    action,
		Timestamp: a.v.now(),
	})
}

// ListFor returns the file's entries, newest first, and only to the file's
// owner. Sharees cannot see the history, not even their own entries; they
// get an empty result, the same answer a nonexistent file produces.
func (a *ActivityLog) ListFor(fileID, requesterID string) []*models.AccessLogEntry {
	file, ok := a.v.state.files[fileID]
	if !ok || file.OwnerID != requesterID {
		return nil
	}

	var entries []*models.AccessLogEntry
	for _, l := range a.v.state.logs {
		if l.FileID == fileID {
			entries = append(entries, l)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}
