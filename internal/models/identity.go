package models

// Identity is a local, operator-selectable identity. Identities are not
// authenticated principals; they exist so the catalog can attribute
// ownership, grants and log entries.
type Identity struct {
	ID          string
	Email       string
	DisplayName string
}
