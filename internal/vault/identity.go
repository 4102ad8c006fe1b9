package vault

import (
	"context"

	"github.com/dsavelev/filevault/internal/models"
)

// Current returns the active identity. A vault always has one.
func (v *Vault) Current() *models.Identity {
	return v.current
}

// SwitchTo makes the identity with the given id current. Returns false when
// no such identity exists; the current identity is then left unchanged.
func (v *Vault) SwitchTo(id string) bool {
	for _, ident := range v.state.identities {
		if ident.ID == id {
			v.current = ident
			return true
		}
	}
	return false
}

// Identities lists all known identities in registration order.
func (v *Vault) Identities() []*models.Identity {
	return append([]*models.Identity(nil), v.state.identities...)
}

// AddIdentity registers a new identity and persists it. The current identity
// does not change.
func (v *Vault) AddIdentity(ctx context.Context, email, displayName string) *models.Identity {
	ident := &models.Identity{
		ID:          v.newID(),
		Email:       email,
		DisplayName: displayName,
	}
	v.state.identities = append(v.state.identities, ident)
	v.persist(ctx)
	return ident
}

// ensureDefaultIdentity guarantees the vault never runs with zero
// identities: an empty registry gets exactly one synthesized default, which
// is persisted before the vault serves anything.
func (v *Vault) ensureDefaultIdentity(ctx context.Context) {
	if len(v.state.identities) == 0 {
		ident := &models.Identity{
			ID:          v.newID(),
			Email:       defaultIdentityEmail,
			DisplayName: defaultIdentityName,
		}
		v.state.identities = append(v.state.identities, ident)
		v.current = ident
		v.persist(ctx)
		return
	}
	if v.current == nil {
		v.current = v.state.identities[0]
	}
}
