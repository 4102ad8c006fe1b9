package models

// Snapshot is the complete persisted state of a vault: all four collections,
// written and read as a whole (last writer wins, never incremental).
type Snapshot struct {
	Files      []*StoredFile
	Shares     []*ShareGrant
	Logs       []*AccessLogEntry
	Identities []*Identity
}
