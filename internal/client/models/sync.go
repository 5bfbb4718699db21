package models

import "time"

// SyncState is bookkeeping for a future sync implementation. The store only
// increments PendingChanges on prompt mutations; nothing consumes the
// counter until a sync protocol exists.
type SyncState struct {
	LastSyncAt     *time.Time `json:"lastSyncAt"`
	InProgress     bool       `json:"inProgress"`
	Error          *string    `json:"error"`
	PendingChanges int        `json:"pendingChanges"`
	Version        int        `json:"version"`
}
