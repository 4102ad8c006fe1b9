package vault

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsavelev/filevault/internal/common"
	"github.com/dsavelev/filevault/internal/models"
)

func actionsFor(v *Vault, fileID string) []models.Action {
	var actions []models.Action
	for _, l := range v.state.logs {
		if l.FileID == fileID {
			actions = append(actions, l.Action)
		}
	}
	return actions
}

func TestStore_UploadScenario(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	alice := v.Current()
	bob := v.AddIdentity(ctx, "bob@example.com", "Bob")

	fileID := v.Files().Store(ctx, encryptHello(t, "secretkey"), alice)
	require.NotEmpty(t, fileID)

	assert.Equal(t, []models.Action{models.ActionUpload}, actionsFor(v, fileID))

	owned := v.Files().ListOwned(alice.ID)
	require.Len(t, owned, 1)
	assert.Equal(t, fileID, owned[0].ID)
	assert.Equal(t, alice.ID, owned[0].OwnerID)
	assert.Equal(t, alice.DisplayName, owned[0].OwnerName)
	assert.Empty(t, owned[0].SharedWith)

	assert.Empty(t, v.Files().ListSharedWith(bob.ID))
}

func TestStore_GetHidesExistence(t *testing.T) {
	v, fileID, owner, bob := setupShared(t)
	ctx := context.Background()

	// Missing file and forbidden file produce the same error.
	_, err := v.Files().Get(ctx, "no-such-file", owner.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = v.Files().Get(ctx, fileID, bob.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	file, err := v.Files().Get(ctx, fileID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, fileID, file.ID)
	assert.Equal(t, []models.Action{models.ActionUpload, models.ActionView}, actionsFor(v, fileID))
}

func TestStore_Lists(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	alice := v.Current()
	bob := v.AddIdentity(ctx, "bob@example.com", "Bob")

	first := v.Files().Store(ctx, encryptHello(t, "secretkey"), alice)
	second := v.Files().Store(ctx, encryptHello(t, "secretkey"), alice)
	bobs := v.Files().Store(ctx, encryptHello(t, "secretkey"), bob)

	owned := v.Files().ListOwned(alice.ID)
	require.Len(t, owned, 2)
	assert.Equal(t, first, owned[0].ID)
	assert.Equal(t, second, owned[1].ID)

	// Not shared yet.
	assert.Empty(t, v.Files().ListSharedWith(alice.ID))

	require.True(t, v.Files().Share(ctx, bobs, bob.ID, alice.ID, false, nil, ""))
	shared := v.Files().ListSharedWith(alice.ID)
	require.Len(t, shared, 1)
	assert.Equal(t, bobs, shared[0].ID)

	// Own files never show up under shared-with-me.
	assert.Empty(t, v.Files().ListSharedWith(bob.ID))
}

func TestStore_DownloadScenario(t *testing.T) {
	v, fileID, owner, bob := setupShared(t)
	ctx := context.Background()

	require.True(t, v.Files().Share(ctx, fileID, owner.ID, bob.ID, false, nil, ""))

	file, plaintext, err := v.Files().Download(ctx, fileID, bob.ID, "secretkey")
	require.NoError(t, err)
	assert.Equal(t, "hello.txt", file.Filename)
	assert.Equal(t, []byte("hello"), plaintext)

	// decrypt then download, in that order.
	assert.Equal(t,
		[]models.Action{models.ActionUpload, models.ActionShare, models.ActionDecrypt, models.ActionDownload},
		actionsFor(v, fileID))

	// Bob still cannot read the history, not even his own entries.
	assert.Empty(t, v.Log().ListFor(fileID, bob.ID))
	assert.Len(t, v.Log().ListFor(fileID, owner.ID), 4)
}

func TestStore_DownloadErrors(t *testing.T) {
	v, fileID, owner, bob := setupShared(t)
	ctx := context.Background()

	t.Run("no access", func(t *testing.T) {
		_, _, err := v.Files().Download(ctx, fileID, bob.ID, "secretkey")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("wrong key", func(t *testing.T) {
		before := len(actionsFor(v, fileID))
		_, _, err := v.Files().Download(ctx, fileID, owner.ID, "notthekey")
		assert.ErrorIs(t, err, common.ErrWrongKey)
		// A failed decrypt leaves no decrypt/download entries.
		assert.Len(t, actionsFor(v, fileID), before)
	})
}

func TestStore_DeleteCascades(t *testing.T) {
	v, fileID, owner, bob := setupShared(t)
	ctx := context.Background()

	require.True(t, v.Files().Share(ctx, fileID, owner.ID, bob.ID, false, nil, ""))

	t.Run("non-owner cannot delete", func(t *testing.T) {
		assert.False(t, v.Files().Delete(ctx, fileID, bob.ID))
		assert.True(t, v.Ledger().CanAccess(fileID, bob.ID))
	})

	t.Run("owner delete cascades", func(t *testing.T) {
		require.True(t, v.Files().Delete(ctx, fileID, owner.ID))

		assert.Empty(t, v.Files().ListOwned(owner.ID))
		assert.False(t, v.Ledger().CanAccess(fileID, bob.ID))
		assert.Empty(t, v.state.shares)
		assert.Empty(t, actionsFor(v, fileID))

		_, err := v.Files().Get(ctx, fileID, owner.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("deleting twice fails", func(t *testing.T) {
		assert.False(t, v.Files().Delete(ctx, fileID, owner.ID))
	})
}
