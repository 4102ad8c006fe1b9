package cli

import (
	"context"
	"fmt"

	"github.com/dsavelev/filevault/internal/models"
)

func printFileLine(f *models.StoredFile) {
	shared := ""
	if len(f.SharedWith) > 0 {
		shared = fmt.Sprintf(", shared with %d", len(f.SharedWith))
	}
	fmt.Printf("%s  %s  %d bytes  %s  (owner %s%s)\n",
		f.ID, f.Filename, f.FileSize, f.CreatedAt.Format("2006-01-02 15:04"), f.OwnerName, shared)
}

// List prints the files the current identity owns.
func (a *App) List(ctx context.Context) error {
	files := a.vault.Files().ListOwned(a.vault.Current().ID)
	if len(files) == 0 {
		fmt.Println("You own no files yet.")
		return nil
	}
	for _, f := range files {
		printFileLine(f)
	}
	return nil
}

// Shared prints the files other identities shared with the current one.
func (a *App) Shared(ctx context.Context) error {
	files := a.vault.Files().ListSharedWith(a.vault.Current().ID)
	if len(files) == 0 {
		fmt.Println("Nothing is shared with you.")
		return nil
	}
	for _, f := range files {
		printFileLine(f)
	}
	return nil
}
