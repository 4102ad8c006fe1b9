package cli

import (
	"context"
	"fmt"

	"github.com/dsavelev/filevault/internal/cryptox"
)

// GenKey prints a freshly generated random encryption key. The key is not
// stored anywhere; the user must keep it to decrypt later.
func (a *App) GenKey(ctx context.Context) error {
	key, err := cryptox.GenerateKey(a.config.KeyLength)
	if err != nil {
		return err
	}
	fmt.Printf("Generated key: %s\n", key)
	fmt.Println("Store it safely; without it the file cannot be decrypted.")
	return nil
}
