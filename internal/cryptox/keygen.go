package cryptox

import (
	"crypto/rand"
	"fmt"
)

const keyCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

// GenerateKey returns a random key of the given length drawn from keyCharset.
func GenerateKey(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = keyCharset[int(b)%len(keyCharset)]
	}
	return string(out), nil
}
