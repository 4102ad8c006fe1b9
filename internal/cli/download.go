package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dsavelev/filevault/internal/common"
	"github.com/dsavelev/filevault/internal/filex"
)

// Download decrypts a stored file into ./downloads.
func (a *App) Download(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "File id to download", os.Stdout)
	if err != nil {
		return err
	}

	key, err := GetKey(os.Stdout, "Decryption key: ")
	if err != nil {
		return err
	}
	if len(key) < minKeyLength {
		fmt.Printf("Keys are at least %d characters, check your input.\n", minKeyLength)
		return common.ErrInvalidKey
	}

	file, plaintext, err := a.vault.Files().Download(ctx, id, a.vault.Current().ID, key)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			fmt.Println("No such file.")
		case errors.Is(err, common.ErrWrongKey):
			fmt.Println("Wrong key, check your input.")
		default:
			fmt.Println("Decryption failed:", err)
		}
		return err
	}

	dir, err := filex.EnsureSubDir("downloads")
	if err != nil {
		fmt.Println("Cannot prepare download directory:", err)
		return err
	}

	target := filepath.Join(dir, file.Filename)
	if err := os.WriteFile(target, plaintext, 0o600); err != nil {
		fmt.Println("Cannot write file:", err)
		return err
	}

	fmt.Printf("Decrypted %s to %s\n", file.Filename, target)
	return nil
}
