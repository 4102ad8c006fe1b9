package cryptox

import (
	"bytes"
	"crypto/aes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsavelev/filevault/internal/common"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"short text", []byte("hello")},
		{"exact block", bytes.Repeat([]byte{0xAB}, aes.BlockSize)},
		{"multi block", bytes.Repeat([]byte("filevault!"), 100)},
		{"empty", []byte{}},
		{"trailing zeros", []byte{1, 2, 3, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ef, err := Encrypt(tt.plaintext, "data.bin", "", "secretkey")
			require.NoError(t, err)

			got, err := Decrypt(ef, "secretkey")
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
			assert.EqualValues(t, len(tt.plaintext), ef.FileSize)
		})
	}
}

func TestEncrypt_Deterministic(t *testing.T) {
	a, err := Encrypt([]byte("same payload"), "a.txt", "text/plain", "k1")
	require.NoError(t, err)
	b, err := Encrypt([]byte("same payload"), "a.txt", "text/plain", "k1")
	require.NoError(t, err)

	assert.Equal(t, a.EncryptedData, b.EncryptedData)
}

func TestEncrypt_EmptyKey(t *testing.T) {
	_, err := Encrypt([]byte("x"), "a.txt", "", "")
	assert.ErrorIs(t, err, common.ErrInvalidKey)
}

func TestEncrypt_DefaultMimeType(t *testing.T) {
	ef, err := Encrypt([]byte("x"), "a.bin", "", "k")
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", ef.MimeType)

	ef, err = Encrypt([]byte("x"), "a.txt", "text/plain", "k")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", ef.MimeType)
}

func TestDecrypt_WrongKey(t *testing.T) {
	ef, err := Encrypt([]byte("payload"), "a.bin", "", "correct")
	require.NoError(t, err)

	got, err := Decrypt(ef, "incorrect")
	assert.ErrorIs(t, err, common.ErrWrongKey)
	assert.Nil(t, got)
}

func TestDecrypt_CorruptCiphertext(t *testing.T) {
	ef, err := Encrypt([]byte("payload"), "a.bin", "", "k")
	require.NoError(t, err)

	t.Run("not base64", func(t *testing.T) {
		bad := *ef
		bad.EncryptedData = "%%% not base64 %%%"
		_, err := Decrypt(&bad, "k")
		assert.ErrorIs(t, err, common.ErrCorruptCiphertext)
	})

	t.Run("not block aligned", func(t *testing.T) {
		bad := *ef
		raw, decErr := base64.StdEncoding.DecodeString(ef.EncryptedData)
		require.NoError(t, decErr)
		bad.EncryptedData = base64.StdEncoding.EncodeToString(raw[:len(raw)-1])
		_, err := Decrypt(&bad, "k")
		assert.ErrorIs(t, err, common.ErrCorruptCiphertext)
	})

	t.Run("size exceeds payload", func(t *testing.T) {
		bad := *ef
		bad.FileSize = 10_000
		_, err := Decrypt(&bad, "k")
		assert.ErrorIs(t, err, common.ErrCorruptCiphertext)
	})
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, Fingerprint("secretkey"), Fingerprint("secretkey"))
	assert.NotEqual(t, Fingerprint("secretkey"), Fingerprint("secretkeY"))

	// Known SHA-256 digest, base64-encoded.
	assert.Equal(t, "rRZbETILyRUBqwhhPMOkimKmyspNXIsUyoLMMTs7ls0=", Fingerprint("secretkey"))
}

func TestGenerateKey(t *testing.T) {
	k1, err := GenerateKey(16)
	require.NoError(t, err)
	assert.Len(t, k1, 16)

	k2, err := GenerateKey(16)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)

	for _, c := range k1 {
		assert.Contains(t, keyCharset, string(c))
	}
}
