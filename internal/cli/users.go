package cli

import (
	"context"
	"fmt"
	"os"
)

// Users lists all known identities.
func (a *App) Users(ctx context.Context) error {
	cur := a.vault.Current()
	for _, ident := range a.vault.Identities() {
		marker := " "
		if ident.ID == cur.ID {
			marker = "*"
		}
		fmt.Printf("%s %s  %s <%s>\n", marker, ident.ID, ident.DisplayName, ident.Email)
	}
	return nil
}

// AddUser registers a new identity. It does not switch to it.
func (a *App) AddUser(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Display name", os.Stdout)
	if err != nil {
		return err
	}

	ident := a.vault.AddIdentity(ctx, email, name)
	fmt.Printf("Added %s as %s.\n", ident.DisplayName, ident.ID)
	return nil
}

// Switch makes another identity current.
func (a *App) Switch(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Identity id to switch to", os.Stdout)
	if err != nil {
		return err
	}

	if !a.vault.SwitchTo(id) {
		fmt.Println("No such identity; see 'users'.")
		return nil
	}

	fmt.Printf("Now acting as %s.\n", a.vault.Current().DisplayName)
	return nil
}
