package cli

import (
	"context"
	"fmt"
	"os"
)

// Delete removes a file the current identity owns, together with its grants
// and access history.
func (a *App) Delete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "File id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if !a.vault.Files().Delete(ctx, id, a.vault.Current().ID) {
		fmt.Println("Deletion refused: only the owner may delete a file.")
		return nil
	}

	fmt.Printf("Deleted %s with its grants and history.\n", id)
	return nil
}
