package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/dsavelev/filevault/internal/common"
	"github.com/dsavelev/filevault/internal/cryptox"
)

// Upload encrypts a local file under a key and stores the ciphertext. With
// an empty key a fresh one is generated and shown once; it is never saved.
func (a *App) Upload(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Path of the file to encrypt", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Cannot read %s: %v\n", path, err)
		return err
	}

	key, err := GetKey(os.Stdout, "Encryption key (leave empty to generate): ")
	if err != nil {
		return err
	}
	if key == "" {
		key, err = cryptox.GenerateKey(a.config.KeyLength)
		if err != nil {
			fmt.Println("Key generation failed:", err)
			return err
		}
		fmt.Printf("Generated key: %s\nStore it safely, it is not saved anywhere.\n", key)
	} else if len(key) < minKeyLength {
		fmt.Printf("Keys are at least %d characters, pick a longer one.\n", minKeyLength)
		return common.ErrInvalidKey
	}

	ef, err := cryptox.Encrypt(data, filepath.Base(path), mime.TypeByExtension(filepath.Ext(path)), key)
	if err != nil {
		fmt.Println("Encryption failed:", err)
		return err
	}

	id := a.vault.Files().Store(ctx, ef, a.vault.Current())
	fmt.Printf("Stored %s (%d bytes) as %s\n", ef.Filename, ef.FileSize, id)
	return nil
}
