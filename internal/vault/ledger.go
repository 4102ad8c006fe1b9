package vault

import (
	"time"

	"github.com/dsavelev/filevault/internal/models"
)

// Ledger authorizes every operation that touches a stored file. Reads are
// public; grant/revoke mutations go through the FileStore so that every
// mutation ends with a persistence save.
type Ledger struct {
	v *Vault
}

// CanAccess reports whether userID may read the file: they own it, or they
// hold an unexpired grant. The answer is evaluated against the current time
// on every call — expiry is lazy and never cached.
func (l *Ledger) CanAccess(fileID, userID string) bool {
	file, ok := l.v.state.files[fileID]
	if !ok {
		return false
	}
	if file.OwnerID == userID {
		return true
	}
	return l.ActiveGrant(fileID, userID) != nil
}

// ActiveGrant returns the unexpired grant for (fileID, userID), or nil.
// Callers use it to fetch the wrapped key a sharer left for them.
func (l *Ledger) ActiveGrant(fileID, userID string) *models.ShareGrant {
	now := l.v.now()
	for _, g := range l.v.state.shares {
		if g.FileID == fileID && g.SharedWith == userID && !g.Expired(now) {
			return g
		}
	}
	return nil
}

// SharesFor lists every grant on the file, expired ones included, but only
// to the file's owner. Everyone else gets nil.
func (l *Ledger) SharesFor(fileID, requesterID string) []*models.ShareGrant {
	file, ok := l.v.state.files[fileID]
	if !ok || file.OwnerID != requesterID {
		return nil
	}

	var grants []*models.ShareGrant
	for _, g := range l.v.state.shares {
		if g.FileID == fileID {
			grants = append(grants, g)
		}
	}
	return grants
}

// grantFor returns the grant record for (fileID, userID) regardless of
// expiry. The ledger keeps at most one record per pair.
func (l *Ledger) grantFor(fileID, userID string) *models.ShareGrant {
	for _, g := range l.v.state.shares {
		if g.FileID == fileID && g.SharedWith == userID {
			return g
		}
	}
	return nil
}

// grant authorizes byUser (owner, or holder of a reshare-capable grant) to
// share the file with toUser. An existing grant for the pair is updated in
// place — CanReshare and ExpiresAt are overwritten, the wrapped key only
// when a new one is supplied — so the pair never accumulates duplicates.
// Returns false on authorization failure or unknown file.
func (l *Ledger) grant(fileID, byUser, toUser string, canReshare bool, expiresAt *time.Time, wrappedKey string) bool {
	file, ok := l.v.state.files[fileID]
	if !ok {
		return false
	}

	if file.OwnerID != byUser {
		g := l.grantFor(fileID, byUser)
		if g == nil || !g.CanReshare {
			return false
		}
	}

	if existing := l.grantFor(fileID, toUser); existing != nil {
		existing.CanReshare = canReshare
		existing.ExpiresAt = expiresAt
		if wrappedKey != "" {
			existing.EncryptedKey = wrappedKey
		}
	} else {
		l.v.state.shares = append(l.v.state.shares, &models.ShareGrant{
			FileID:       fileID,
			SharedBy:     byUser,
			SharedWith:   toUser,
			CanReshare:   canReshare,
			ExpiresAt:    expiresAt,
			CreatedAt:    l.v.now(),
			EncryptedKey: wrappedKey,
		})
	}

	l.refreshProjection(file)
	return true
}

// revoke removes the grant for (fileID, target). Only the file's owner may
// revoke; reshare delegates cannot. Returns false when byUser is not the
// owner or no grant record exists.
func (l *Ledger) revoke(fileID, byUser, target string) bool {
	file, ok := l.v.state.files[fileID]
	if !ok || file.OwnerID != byUser {
		return false
	}

	for i, g := range l.v.state.shares {
		if g.FileID == fileID && g.SharedWith == target {
			l.v.state.shares = append(l.v.state.shares[:i], l.v.state.shares[i+1:]...)
			l.refreshProjection(file)
			return true
		}
	}
	return false
}

// refreshProjection recomputes the file's SharedWith list from the grants
// active right now. Called after every grant/revoke and on load, so the
// projection never diverges from the ledger at a mutation boundary.
func (l *Ledger) refreshProjection(file *models.StoredFile) {
	now := l.v.now()
	sharedWith := make([]string, 0)
	for _, g := range l.v.state.shares {
		if g.FileID == file.ID && !g.Expired(now) {
			sharedWith = append(sharedWith, g.SharedWith)
		}
	}
	file.SharedWith = sharedWith
}
