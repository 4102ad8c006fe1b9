// Package cryptox implements the vault's cipher engine: deterministic
// block-cipher encryption of file payloads, one-way key fingerprints used to
// reject wrong keys before decryption, and the text-safe ciphertext encoding.
package cryptox

import (
	"crypto/aes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/dsavelev/filevault/internal/common"
	"github.com/dsavelev/filevault/internal/models"
)

// cipherSalt is a fixed domain-separation salt for key stretching.
// Encryption must stay a pure function of (plaintext, key), so the salt
// cannot be random.
var cipherSalt = []byte("filevault.cipher.v1")

// deriveCipherKey stretches an arbitrary-length key string into a 32-byte
// AES-256 key.
func deriveCipherKey(key string) []byte {
	return argon2.IDKey([]byte(key), cipherSalt, 1, 64*1024, 4, 32)
}

// Fingerprint returns the base64-encoded SHA-256 digest of the UTF-8 key
// bytes. It detects key mismatches without storing the key; it is not an
// access-control token.
func Fingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Encrypt encrypts plaintext under the given key and returns the immutable
// EncryptedFile record. The last block is zero-padded to the cipher's block
// boundary; FileSize keeps the exact plaintext length so decryption can
// truncate precisely. An empty key yields ErrInvalidKey.
//
// Each block is encrypted independently: the same (plaintext, key) pair
// always produces the same ciphertext.
func Encrypt(plaintext []byte, filename, mimeType, key string) (*models.EncryptedFile, error) {
	if key == "" {
		return nil, common.ErrInvalidKey
	}

	block, err := aes.NewCipher(deriveCipherKey(key))
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	padded := make([]byte, (len(plaintext)+aes.BlockSize-1)/aes.BlockSize*aes.BlockSize)
	copy(padded, plaintext)

	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += aes.BlockSize {
		block.Encrypt(out[i:i+aes.BlockSize], padded[i:i+aes.BlockSize])
	}

	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return &models.EncryptedFile{
		Filename:          filename,
		EncryptedData:     base64.StdEncoding.EncodeToString(out),
		FileSize:          int64(len(plaintext)),
		MimeType:          mimeType,
		EncryptionKeyHash: Fingerprint(key),
	}, nil
}

// Decrypt recovers the original plaintext of file under the given key.
//
// The key fingerprint is compared first: on mismatch Decrypt fails with
// ErrWrongKey before any cipher work, so wrong keys never produce garbage
// output and cipher-level error channels stay closed to key guessing.
// A payload whose decoded length is not a multiple of the block size, or
// whose FileSize is inconsistent with it, yields ErrCorruptCiphertext.
func Decrypt(file *models.EncryptedFile, key string) ([]byte, error) {
	if Fingerprint(key) != file.EncryptionKeyHash {
		return nil, common.ErrWrongKey
	}

	ciphertext, err := base64.StdEncoding.DecodeString(file.EncryptedData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptCiphertext, err)
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, common.ErrCorruptCiphertext
	}

	block, err := aes.NewCipher(deriveCipherKey(key))
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	plain := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += aes.BlockSize {
		block.Decrypt(plain[i:i+aes.BlockSize], ciphertext[i:i+aes.BlockSize])
	}

	// Exact-length truncation instead of scanning off trailing zero padding,
	// which would eat zero bytes belonging to the plaintext.
	if file.FileSize < 0 || file.FileSize > int64(len(plain)) {
		return nil, common.ErrCorruptCiphertext
	}
	return plain[:file.FileSize], nil
}
