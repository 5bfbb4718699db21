package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/codamon/immersive-prompt/internal/client/models"
	"github.com/codamon/immersive-prompt/internal/client/storage"
	"github.com/codamon/immersive-prompt/internal/common"
	"github.com/codamon/immersive-prompt/internal/logging"
)

// TransferService serializes the whole document for backup files and
// restores it from them.
type TransferService struct {
	store storage.Store
	log   logging.Logger
}

// NewTransferService returns a transfer service over the given store.
func NewTransferService(store storage.Store, log logging.Logger) *TransferService {
	return &TransferService{store: store, log: log}
}

// Export serializes the entire document to JSON. Any top-level key present
// in a well-formed document round-trips unchanged through Export then
// Import.
func (s *TransferService) Export(ctx context.Context) (string, error) {
	doc, err := s.store.GetAll(ctx)
	if err != nil {
		return "", fmt.Errorf("exporting data: %w", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("exporting data: %w", err)
	}
	return string(data), nil
}

// Import replaces the stored document with the parsed payload. The payload
// must carry the prompts, folders and settings keys; missing system folders
// are backfilled from the first-run defaults without overwriting folders
// the payload does provide. Parse and validation failures are logged and
// reported as false, never raised.
func (s *TransferService) Import(ctx context.Context, payload string) bool {
	if err := s.importDocument(ctx, payload); err != nil {
		s.log.Error(ctx, "import failed", "error", err.Error())
		return false
	}
	return true
}

func (s *TransferService) importDocument(ctx context.Context, payload string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidImport, err)
	}

	for _, key := range []string{models.KeyPrompts, models.KeyFolders, models.KeySettings} {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("%w: missing %q", common.ErrInvalidImport, key)
		}
	}

	doc, err := models.DecodeDocument(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidImport, err)
	}

	// System folders must exist in every stored document. Imported ones win;
	// only the missing ones are backfilled.
	for id, def := range models.DefaultFolders(time.Now().UTC()) {
		if _, ok := doc.Folders[id]; !ok {
			doc.Folders[id] = def
		}
	}

	if err := s.store.SetAll(ctx, doc); err != nil {
		return fmt.Errorf("replacing document: %w", err)
	}
	return nil
}

// Reset discards everything and restores the first-run document.
func (s *TransferService) Reset(ctx context.Context) error {
	if err := s.store.SetAll(ctx, models.NewDocument()); err != nil {
		return fmt.Errorf("resetting data: %w", err)
	}
	return nil
}
