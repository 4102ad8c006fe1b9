package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dsavelev/filevault/internal/dbx"
	"github.com/dsavelev/filevault/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteRepository stores snapshots in a local SQLite database. Timestamps
// are persisted as Unix nanoseconds and reconstructed on load; a NULL
// expires_at means the grant never expires.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the database at dsn and applies
// pending migrations.
func NewSQLiteRepository(ctx context.Context, dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Save replaces the stored snapshot with s in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, s *models.Snapshot) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		for _, table := range []string{"files", "shares", "access_logs", "identities"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for _, f := range s.Files {
			sharedWith, err := json.Marshal(f.SharedWith)
			if err != nil {
				return fmt.Errorf("marshal shared_with: %w", err)
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO files (id, filename, encrypted_data, file_size, mime_type,
					encryption_key_hash, owner_id, owner_name, created_at, shared_with)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				f.ID, f.Filename, f.EncryptedData, f.FileSize, f.MimeType,
				f.EncryptionKeyHash, f.OwnerID, f.OwnerName, f.CreatedAt.UnixNano(), string(sharedWith))
			if err != nil {
				return fmt.Errorf("insert file %s: %w", f.ID, err)
			}
		}

		for _, g := range s.Shares {
			var expiresAt any
			if g.ExpiresAt != nil {
				expiresAt = g.ExpiresAt.UnixNano()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO shares (file_id, shared_by, shared_with, can_reshare,
					expires_at, created_at, encrypted_key)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				g.FileID, g.SharedBy, g.SharedWith, g.CanReshare,
				expiresAt, g.CreatedAt.UnixNano(), g.EncryptedKey)
			if err != nil {
				return fmt.Errorf("insert share %s/%s: %w", g.FileID, g.SharedWith, err)
			}
		}

		for _, l := range s.Logs {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO access_logs (file_id, user_id, action, timestamp)
				VALUES (?, ?, ?, ?)`,
				l.FileID, l.UserID, string(l.Action), l.Timestamp.UnixNano())
			if err != nil {
				return fmt.Errorf("insert access log: %w", err)
			}
		}

		for _, id := range s.Identities {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO identities (id, email, display_name) VALUES (?, ?, ?)`,
				id.ID, id.Email, id.DisplayName)
			if err != nil {
				return fmt.Errorf("insert identity %s: %w", id.ID, err)
			}
		}

		return nil
	})
}

// Load reads the full snapshot back.
func (r *SQLiteRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	s := &models.Snapshot{}

	if err := r.loadFiles(ctx, s); err != nil {
		return nil, err
	}
	if err := r.loadShares(ctx, s); err != nil {
		return nil, err
	}
	if err := r.loadLogs(ctx, s); err != nil {
		return nil, err
	}
	if err := r.loadIdentities(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}

func (r *SQLiteRepository) loadFiles(ctx context.Context, s *models.Snapshot) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, filename, encrypted_data, file_size, mime_type,
			encryption_key_hash, owner_id, owner_name, created_at, shared_with
		FROM files ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("select files: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		f := &models.StoredFile{}
		var createdAt int64
		var sharedWith string
		if err := rows.Scan(&f.ID, &f.Filename, &f.EncryptedData, &f.FileSize, &f.MimeType,
			&f.EncryptionKeyHash, &f.OwnerID, &f.OwnerName, &createdAt, &sharedWith); err != nil {
			return fmt.Errorf("scan file: %w", err)
		}
		f.CreatedAt = time.Unix(0, createdAt)
		if err := json.Unmarshal([]byte(sharedWith), &f.SharedWith); err != nil {
			return fmt.Errorf("unmarshal shared_with: %w", err)
		}
		s.Files = append(s.Files, f)
	}
	return rows.Err()
}

func (r *SQLiteRepository) loadShares(ctx context.Context, s *models.Snapshot) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT file_id, shared_by, shared_with, can_reshare, expires_at, created_at, encrypted_key
		FROM shares ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("select shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		g := &models.ShareGrant{}
		var expiresAt sql.NullInt64
		var createdAt int64
		if err := rows.Scan(&g.FileID, &g.SharedBy, &g.SharedWith, &g.CanReshare,
			&expiresAt, &createdAt, &g.EncryptedKey); err != nil {
			return fmt.Errorf("scan share: %w", err)
		}
		if expiresAt.Valid {
			t := time.Unix(0, expiresAt.Int64)
			g.ExpiresAt = &t
		}
		g.CreatedAt = time.Unix(0, createdAt)
		s.Shares = append(s.Shares, g)
	}
	return rows.Err()
}

func (r *SQLiteRepository) loadLogs(ctx context.Context, s *models.Snapshot) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT file_id, user_id, action, timestamp FROM access_logs ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("select access logs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		l := &models.AccessLogEntry{}
		var action string
		var ts int64
		if err := rows.Scan(&l.FileID, &l.UserID, &action, &ts); err != nil {
			return fmt.Errorf("scan access log: %w", err)
		}
		l.Action = models.Action(action)
		l.Timestamp = time.Unix(0, ts)
		s.Logs = append(s.Logs, l)
	}
	return rows.Err()
}

func (r *SQLiteRepository) loadIdentities(ctx context.Context, s *models.Snapshot) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, email, display_name FROM identities ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("select identities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		id := &models.Identity{}
		if err := rows.Scan(&id.ID, &id.Email, &id.DisplayName); err != nil {
			return fmt.Errorf("scan identity: %w", err)
		}
		s.Identities = append(s.Identities, id)
	}
	return rows.Err()
}
