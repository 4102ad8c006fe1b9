package cli

import (
	"context"
	"fmt"
	"os"
)

// Reset wipes the whole vault after a confirmation. Files, grants, history
// and identities are all dropped and a fresh default identity takes over.
func (a *App) Reset(ctx context.Context) error {
	ok, err := GetYesNo(a.reader, "This erases every file, grant, log entry and identity. Continue?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Reset cancelled.")
		return nil
	}

	a.vault.Reset(ctx)
	fmt.Printf("Vault reset. Now acting as %s.\n", a.vault.Current().DisplayName)
	return nil
}
