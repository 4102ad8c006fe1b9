package cli

import (
	"context"
	"fmt"
	"os"
)

// Logs prints a file's access history, newest first. The vault only answers
// for the owner; everyone else sees an empty history.
func (a *App) Logs(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "File id", os.Stdout)
	if err != nil {
		return err
	}

	entries := a.vault.Log().ListFor(id, a.vault.Current().ID)
	if len(entries) == 0 {
		fmt.Println("No history available.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-8s  %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.UserID)
	}
	return nil
}
