// Package common defines shared constants and sentinel errors used across
// the prompt store layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrProtectedFolder is returned when an operation tries to rename, move
	// or delete a system folder (the all-prompts root or the favorites
	// folder). Unlike a missing record this is a caller mistake, so it is
	// surfaced as an error rather than a silent no-op.
	ErrProtectedFolder = errors.New("protected folder")

	// ErrInvalidImport marks an import payload that is unparsable or lacks
	// the required top-level document keys.
	ErrInvalidImport = errors.New("invalid import payload")
)
