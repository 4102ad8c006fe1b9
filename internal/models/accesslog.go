package models

import "time"

// Action classifies an access log entry.
type Action string

const (
	ActionUpload   Action = "upload"
	ActionView     Action = "view"
	ActionDownload Action = "download"
	ActionDecrypt  Action = "decrypt"
	ActionShare    Action = "share"
)

// AccessLogEntry records one action against one file. Entries are append-only
// and removed only as part of deleting their file.
type AccessLogEntry struct {
	FileID    string
	UserID    string
	Action    Action
	Timestamp time.Time
}
