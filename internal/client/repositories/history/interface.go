package history

import (
	"context"

	"github.com/codamon/immersive-prompt/internal/client/models"
)

// Log describes the capped, newest-first activity log. Entries are
// write-once; the log only ever shrinks by evicting its oldest records.
type Log interface {
	// Append prepends the entry and trims the log to its capacity.
	// A zero ID or Timestamp is filled in.
	Append(ctx context.Context, item models.HistoryItem) error

	// List returns the most recent limit entries, newest first. A
	// non-positive limit returns everything retained.
	List(ctx context.Context, limit int) ([]models.HistoryItem, error)
}
