package vault

import (
	"context"
	"sort"
	"time"

	"github.com/dsavelev/filevault/internal/common"
	"github.com/dsavelev/filevault/internal/cryptox"
	"github.com/dsavelev/filevault/internal/models"
)

// FileStore owns the catalog of stored encrypted files. Every mutation is
// dispatched through the ledger's authorization checks and ends with a
// snapshot save.
type FileStore struct {
	v *Vault
}

// Store registers an encrypted file under its owner and returns the fresh
// file id. Records an upload entry for the owner.
func (s *FileStore) Store(ctx context.Context, ef *models.EncryptedFile, owner *models.Identity) string {
	file := &models.StoredFile{
		EncryptedFile: *ef,
		ID:            s.v.newID(),
		OwnerID:       owner.ID,
		OwnerName:     owner.DisplayName,
		CreatedAt:     s.v.now(),
		SharedWith:    []string{},
	}

	s.v.state.files[file.ID] = file
	s.v.log.append(file.ID, owner.ID, models.ActionUpload)
	s.v.persist(ctx)

	return file.ID
}

// Get returns the file if the requester may read it and records a view
// entry. A missing file and a forbidden one both come back as ErrNotFound,
// so existence is never revealed to unauthorized identities.
func (s *FileStore) Get(ctx context.Context, fileID, requesterID string) (*models.StoredFile, error) {
	file, ok := s.v.state.files[fileID]
	if !ok || !s.v.ledger.CanAccess(fileID, requesterID) {
		return nil, common.ErrNotFound
	}

	s.v.log.append(fileID, requesterID, models.ActionView)
	s.v.persist(ctx)
	return file, nil
}

// ListOwned returns all files owned by userID, oldest first.
func (s *FileStore) ListOwned(userID string) []*models.StoredFile {
	var files []*models.StoredFile
	for _, f := range s.v.state.files {
		if f.OwnerID == userID {
			files = append(files, f)
		}
	}
	sortFiles(files)
	return files
}

// ListSharedWith returns all files userID can read but does not own,
// oldest first.
func (s *FileStore) ListSharedWith(userID string) []*models.StoredFile {
	var files []*models.StoredFile
	for _, f := range s.v.state.files {
		if f.OwnerID != userID && s.v.ledger.CanAccess(f.ID, userID) {
			files = append(files, f)
		}
	}
	sortFiles(files)
	return files
}

// Share grants toUser read access. Authorization follows the ledger: the
// owner always may, a grantee only with a reshare-capable grant. Records a
// share entry for the sharer on success; failure leaves no trace.
func (s *FileStore) Share(ctx context.Context, fileID, byUser, toUser string, canReshare bool, expiresAt *time.Time, wrappedKey string) bool {
	if !s.v.ledger.grant(fileID, byUser, toUser, canReshare, expiresAt, wrappedKey) {
		return false
	}

	s.v.log.append(fileID, byUser, models.ActionShare)
	s.v.persist(ctx)
	return true
}

// Revoke withdraws target's grant. Owner only.
func (s *FileStore) Revoke(ctx context.Context, fileID, byUser, target string) bool {
	if !s.v.ledger.revoke(fileID, byUser, target) {
		return false
	}

	s.v.persist(ctx)
	return true
}

// Delete removes the file and cascades to its grants and log entries.
// Owner only; anyone else gets false and an unchanged catalog.
func (s *FileStore) Delete(ctx context.Context, fileID, requesterID string) bool {
	file, ok := s.v.state.files[fileID]
	if !ok || file.OwnerID != requesterID {
		return false
	}

	delete(s.v.state.files, fileID)

	shares := s.v.state.shares[:0]
	for _, g := range s.v.state.shares {
		if g.FileID != fileID {
			shares = append(shares, g)
		}
	}
	s.v.state.shares = shares

	logs := s.v.state.logs[:0]
	for _, l := range s.v.state.logs {
		if l.FileID != fileID {
			logs = append(logs, l)
		}
	}
	s.v.state.logs = logs

	s.v.persist(ctx)
	return true
}

// Download decrypts the file for the requester and returns it with the
// recovered plaintext. On success it records decrypt and then download
// entries, in that order: the first proves the key was correct, the second
// that the payload was exported. Inaccessible files yield ErrNotFound;
// cipher failures pass through unchanged.
func (s *FileStore) Download(ctx context.Context, fileID, requesterID, key string) (*models.StoredFile, []byte, error) {
	file, ok := s.v.state.files[fileID]
	if !ok || !s.v.ledger.CanAccess(fileID, requesterID) {
		return nil, nil, common.ErrNotFound
	}

	plaintext, err := cryptox.Decrypt(&file.EncryptedFile, key)
	if err != nil {
		return nil, nil, err
	}

	s.v.log.append(fileID, requesterID, models.ActionDecrypt)
	s.v.log.append(fileID, requesterID, models.ActionDownload)
	s.v.persist(ctx)

	return file, plaintext, nil
}

func sortFiles(files []*models.StoredFile) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].CreatedAt.Equal(files[j].CreatedAt) {
			return files[i].ID < files[j].ID
		}
		return files[i].CreatedAt.Before(files[j].CreatedAt)
	})
}
