// Package models defines the records managed by the vault: encrypted files,
// share grants, access log entries and identities.
package models

import "time"

// EncryptedFile is the immutable output of the cipher engine. The payload is
// kept in its text-safe encoded form until decryption.
type EncryptedFile struct {
	Filename      string
	EncryptedData string // base64-encoded ciphertext
	FileSize      int64  // original plaintext length in bytes
	MimeType      string

	// EncryptionKeyHash is the fingerprint of the encryption key. It exists
	// only to reject wrong keys before decryption; possession of the hash
	// grants no access.
	EncryptionKeyHash string
}

// StoredFile is an EncryptedFile registered in the catalog.
type StoredFile struct {
	EncryptedFile

	ID        string
	OwnerID   string
	OwnerName string
	CreatedAt time.Time

	// SharedWith is a read-optimized projection of the grant ledger,
	// recomputed on every grant/revoke. The ledger stays authoritative.
	SharedWith []string
}
