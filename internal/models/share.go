package models

import "time"

// ShareGrant authorizes one identity to read a file owned by another.
// At most one grant exists per (FileID, SharedWith) pair; granting again for
// the same pair updates the existing record in place.
type ShareGrant struct {
	FileID     string
	SharedBy   string
	SharedWith string
	CanReshare bool
	ExpiresAt  *time.Time // nil means the grant never expires
	CreatedAt  time.Time

	// EncryptedKey optionally carries the file key wrapped for the
	// recipient. Producing it is up to the parties; it is stored verbatim.
	EncryptedKey string
}

// Expired reports whether the grant is past its expiry at the given instant.
// Expired grants are treated as absent by access checks but are kept until
// revoked or superseded; there is no background sweep.
func (g *ShareGrant) Expired(now time.Time) bool {
	return g.ExpiresAt != nil && !g.ExpiresAt.After(now)
}
