package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Share grants another identity access to a file. The vault decides whether
// the current identity may share at all; a refusal is reported, not raised.
func (a *App) Share(ctx context.Context) error {
	fileID, err := GetSimpleText(a.reader, "File id to share", os.Stdout)
	if err != nil {
		return err
	}
	toUser, err := GetSimpleText(a.reader, "Identity id to share with", os.Stdout)
	if err != nil {
		return err
	}
	canReshare, err := GetYesNo(a.reader, "Allow further resharing?", os.Stdout)
	if err != nil {
		return err
	}

	hoursText, err := GetSimpleText(a.reader, "Expires in hours (empty for no expiry)", os.Stdout)
	if err != nil {
		return err
	}
	var expiresAt *time.Time
	if hoursText != "" {
		hours, err := strconv.Atoi(hoursText)
		if err != nil || hours <= 0 {
			fmt.Println("Expiry must be a positive number of hours.")
			return nil
		}
		t := time.Now().Add(time.Duration(hours) * time.Hour)
		expiresAt = &t
	}

	wrappedKey, err := GetSimpleText(a.reader, "Wrapped key for the recipient (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if !a.vault.Files().Share(ctx, fileID, a.vault.Current().ID, toUser, canReshare, expiresAt, wrappedKey) {
		fmt.Println("Sharing refused: you need to own the file or hold a reshare-capable grant.")
		return nil
	}

	fmt.Printf("Shared %s with %s.\n", fileID, toUser)
	return nil
}

// Revoke withdraws a grant. Owner only.
func (a *App) Revoke(ctx context.Context) error {
	fileID, err := GetSimpleText(a.reader, "File id", os.Stdout)
	if err != nil {
		return err
	}
	target, err := GetSimpleText(a.reader, "Identity id to revoke", os.Stdout)
	if err != nil {
		return err
	}

	if !a.vault.Files().Revoke(ctx, fileID, a.vault.Current().ID, target) {
		fmt.Println("Revocation refused: only the owner may revoke an existing grant.")
		return nil
	}

	fmt.Printf("Revoked %s's access to %s.\n", target, fileID)
	return nil
}
