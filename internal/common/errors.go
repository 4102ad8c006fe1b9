// Package common defines sentinel errors shared across FileVault components.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Cipher engine errors.
	ErrInvalidKey        = errors.New("invalid key")
	ErrWrongKey          = errors.New("wrong key")
	ErrCorruptCiphertext = errors.New("corrupt ciphertext")

	// Catalog errors. ErrNotFound covers both a missing file and a file the
	// requester is not allowed to see, so existence is never revealed to
	// unauthorized identities.
	ErrNotFound = errors.New("not found")

	// Persistence errors. A failed save never rolls back the in-memory
	// mutation; the snapshot is at risk until a later save succeeds.
	ErrPersistence = errors.New("persistence failure")
)
