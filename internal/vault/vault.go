// Package vault implements the catalog core: the access ledger, the file
// store, the activity log and the identity registry, all operating on one
// explicitly constructed state container. A Vault is built once per process
// and passed by reference; there are no package-level globals, so tests can
// run isolated instances side by side.
//
// Every public operation runs to completion before the next begins; the
// vault is a single logical actor and defines no internal parallelism.
package vault

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dsavelev/filevault/internal/logging"
	"github.com/dsavelev/filevault/internal/models"
	"github.com/dsavelev/filevault/internal/repositories/snapshot"
)

const (
	defaultIdentityEmail = "demo@example.com"
	defaultIdentityName  = "Demo User"
)

// Vault owns the in-memory catalog and its persistence. Mutating operations
// end with a full snapshot save; a failed save is retried once, logged, and
// never rolls the in-memory mutation back.
type Vault struct {
	repo           snapshot.Repository
	logger         logging.Logger
	saveRetryDelay time.Duration

	now   func() time.Time
	newID func() string

	state   *state
	current *models.Identity

	ledger *Ledger
	files  *FileStore
	log    *ActivityLog
}

// New loads the persisted snapshot (a failed load starts the vault empty)
// and guarantees at least one identity exists afterwards.
func New(ctx context.Context, repo snapshot.Repository, logger logging.Logger, saveRetryDelay time.Duration) *Vault {
	snap, err := repo.Load(ctx)
	if err != nil {
		logger.Warn(ctx, "snapshot load failed, starting empty", "error", err.Error())
		snap = &models.Snapshot{}
	}

	v := &Vault{
		repo:           repo,
		logger:         logger,
		saveRetryDelay: saveRetryDelay,
		now:            time.Now,
		newID:          uuid.NewString,
		state:          newState(snap),
	}
	v.ledger = &Ledger{v: v}
	v.files = &FileStore{v: v}
	v.log = &ActivityLog{v: v}

	// The loaded projections may predate grant expiry or come from an older
	// snapshot; rebuild them from the ledger before serving anything.
	for _, f := range v.state.files {
		v.ledger.refreshProjection(f)
	}

	v.ensureDefaultIdentity(ctx)

	return v
}

// Ledger returns the access ledger.
func (v *Vault) Ledger() *Ledger { return v.ledger }

// Files returns the file store.
func (v *Vault) Files() *FileStore { return v.files }

// Log returns the activity log.
func (v *Vault) Log() *ActivityLog { return v.log }

// Reset wipes all four collections and re-synthesizes the default identity.
func (v *Vault) Reset(ctx context.Context) {
	v.state = newState(&models.Snapshot{})
	v.current = nil
	v.ensureDefaultIdentity(ctx)
}

// persist saves the full snapshot. The in-memory result stands even when the
// save fails; the failure is retried once and logged, leaving the snapshot
// at risk until a later save succeeds.
func (v *Vault) persist(ctx context.Context) {
	snap := v.state.toSnapshot()

	err := v.repo.Save(ctx, snap)
	if err == nil {
		return
	}

	v.logger.Warn(ctx, "snapshot save failed, retrying", "error", err.Error())
	if v.saveRetryDelay > 0 {
		time.Sleep(v.saveRetryDelay)
	}
	if err := v.repo.Save(ctx, snap); err != nil {
		v.logger.Error(ctx, "snapshot save failed, in-memory state at risk", "error", err.Error())
	}
}
