// Package profile implements the settings and user-profile records on top
// of the document store.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/codamon/immersive-prompt/internal/client/models"
	"github.com/codamon/immersive-prompt/internal/client/storage"
)

// DocumentRepository implements Repository over a document store.
type DocumentRepository struct {
	store storage.Store
}

// NewDocumentRepository returns a repository bound to the given store.
func NewDocumentRepository(store storage.Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

func (r *DocumentRepository) Settings(ctx context.Context) (*models.Settings, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}
	return &doc.Settings, nil
}

func (r *DocumentRepository) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating settings: %w", err)
	}

	doc.Settings.Apply(patch)

	if err := r.store.SetAll(ctx, doc); err != nil {
		return nil, fmt.Errorf("updating settings: %w", err)
	}
	return &doc.Settings, nil
}

func (r *DocumentRepository) User(ctx context.Context) (*models.User, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &doc.User, nil
}

func (r *DocumentRepository) UpdateUser(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	doc.User.Apply(patch)
	doc.User.UpdatedAt = time.Now().UTC()

	if err := r.store.SetAll(ctx, doc); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return &doc.User, nil
}
