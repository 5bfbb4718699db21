// Package history implements the activity log on top of the document store.
// Prompt mutations append to the log inside their own document write; this
// package serves reads and out-of-band appends.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codamon/immersive-prompt/internal/client/models"
	"github.com/codamon/immersive-prompt/internal/client/storage"
)

// DocumentLog implements Log over a document store.
type DocumentLog struct {
	store storage.Store
}

// NewDocumentLog returns a log bound to the given store.
func NewDocumentLog(store storage.Store) *DocumentLog {
	return &DocumentLog{store: store}
}

func (l *DocumentLog) Append(ctx context.Context, item models.HistoryItem) error {
	doc, err := l.store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("appending history: %w", err)
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Timestamp.IsZero() {
		item.Timestamp = time.Now().UTC()
	}
	if item.Metadata == nil {
		item.Metadata = map[string]any{}
	}

	doc.PushHistory(item)

	if err := l.store.SetAll(ctx, doc); err != nil {
		return fmt.Errorf("appending history: %w", err)
	}
	return nil
}

func (l *DocumentLog) List(ctx context.Context, limit int) ([]models.HistoryItem, error) {
	doc, err := l.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	if limit <= 0 || limit > len(doc.History) {
		limit = len(doc.History)
	}
	return doc.History[:limit], nil
}
