package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dsavelev/filevault/internal/common"
)

// Show prints one file's details. For the owner it also lists the grants,
// including expired ones still on record.
func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "File id to show", os.Stdout)
	if err != nil {
		return err
	}

	me := a.vault.Current().ID
	file, err := a.vault.Files().Get(ctx, id, me)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Println("No such file.")
		} else {
			fmt.Println("Error:", err)
		}
		return err
	}

	fmt.Printf("File:     %s\n", file.Filename)
	fmt.Printf("Id:       %s\n", file.ID)
	fmt.Printf("Size:     %d bytes (%s)\n", file.FileSize, file.MimeType)
	fmt.Printf("Owner:    %s\n", file.OwnerName)
	fmt.Printf("Uploaded: %s\n", file.CreatedAt.Format("2006-01-02 15:04:05"))

	grants := a.vault.Ledger().SharesFor(id, me)
	if len(grants) == 0 {
		return nil
	}

	fmt.Println("Grants:")
	for _, g := range grants {
		expiry := "never expires"
		if g.ExpiresAt != nil {
			expiry = "expires " + g.ExpiresAt.Format("2006-01-02 15:04")
		}
		reshare := ""
		if g.CanReshare {
			reshare = ", may reshare"
		}
		fmt.Printf("  %s (by %s, %s%s)\n", g.SharedWith, g.SharedBy, expiry, reshare)
	}
	return nil
}
