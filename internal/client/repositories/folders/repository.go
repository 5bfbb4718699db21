// Package folders implements the folder repository on top of the document
// store.
package folders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codamon/immersive-prompt/internal/client/models"
	"github.com/codamon/immersive-prompt/internal/client/storage"
	"github.com/codamon/immersive-prompt/internal/common"
)

// DocumentRepository implements Repository over a document store.
type DocumentRepository struct {
	store storage.Store
}

// NewDocumentRepository returns a repository bound to the given store.
func NewDocumentRepository(store storage.Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

func (r *DocumentRepository) List(ctx context.Context) ([]models.Folder, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}

	result := make([]models.Folder, 0, len(doc.Folders))
	for _, f := range doc.Folders {
		result = append(result, f)
	}
	return result, nil
}

func (r *DocumentRepository) Get(ctx context.Context, id string) (*models.Folder, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting folder: %w", err)
	}

	f, ok := doc.Folders[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &f, nil
}

func (r *DocumentRepository) Contents(ctx context.Context, id string) ([]models.Prompt, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading folder contents: %w", err)
	}

	f, ok := doc.Folders[id]
	if !ok {
		return []models.Prompt{}, nil
	}

	result := make([]models.Prompt, 0, len(f.PromptIDs))
	for _, pid := range f.PromptIDs {
		p, ok := doc.Prompts[pid]
		if !ok || p.IsDeleted {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (r *DocumentRepository) Add(ctx context.Context, draft models.FolderDraft) (*models.Folder, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("adding folder: %w", err)
	}

	now := time.Now().UTC()
	f := draft.NewFolder(uuid.NewString(), now)
	doc.Folders[f.ID] = f

	if err := r.store.SetAll(ctx, doc); err != nil {
		return nil, fmt.Errorf("adding folder: %w", err)
	}
	return &f, nil
}

func (r *DocumentRepository) Update(ctx context.Context, id string, patch models.FolderPatch) (*models.Folder, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating folder: %w", err)
	}

	f, ok := doc.Folders[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if f.IsSystem() && patch.TouchesIdentity() {
		return nil, common.ErrProtectedFolder
	}

	f.Apply(patch)
	f.UpdatedAt = time.Now().UTC()
	doc.Folders[id] = f

	if err := r.store.SetAll(ctx, doc); err != nil {
		return nil, fmt.Errorf("updating folder: %w", err)
	}
	return &f, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) (bool, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return false, fmt.Errorf("deleting folder: %w", err)
	}

	f, ok := doc.Folders[id]
	if !ok {
		return false, nil
	}
	if f.IsSystem() {
		return false, common.ErrProtectedFolder
	}

	// Orphaned prompts move to the root folder rather than being discarded.
	if len(f.PromptIDs) > 0 {
		root, ok := doc.Folders[models.FolderIDRoot]
		if ok {
			changed := false
			for _, pid := range f.PromptIDs {
				if root.AttachPrompt(pid) {
					changed = true
				}
			}
			if changed {
				root.UpdatedAt = time.Now().UTC()
			}
			doc.Folders[models.FolderIDRoot] = root
		}
	}

	delete(doc.Folders, id)

	if err := r.store.SetAll(ctx, doc); err != nil {
		return false, fmt.Errorf("deleting folder: %w", err)
	}
	return true, nil
}
