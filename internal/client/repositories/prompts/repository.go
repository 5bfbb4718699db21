// Package prompts implements the prompt repository on top of the document
// store. Every mutation reads the full document, mutates an in-memory copy
// and writes the whole document back, keeping folder membership, history and
// sync bookkeeping consistent within a single write.
package prompts

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

func (r *DocumentRepository) List(ctx context.Context) ([]models.Prompt, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}

	result := make([]models.Prompt, 0, len(doc.Prompts))
	for _, p := range doc.Prompts {
		if !p.IsDeleted {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *DocumentRepository) Get(ctx context.Context, id string) (*models.Prompt, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting prompt: %w", err)
	}

	p, ok := doc.Prompts[id]
	if !ok || p.IsDeleted {
		return nil, common.ErrNotFound
	}
	return &p, nil
}

func (r *DocumentRepository) Add(ctx context.Context, draft models.PromptDraft) (*models.Prompt, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("adding prompt: %w", err)
	}

	now := time.Now().UTC()
	p := draft.NewPrompt(uuid.NewString(), now)
	doc.Prompts[p.ID] = p

	attachToFolder(doc, models.FolderIDRoot, p.ID, now)
	if p.IsFavorite {
		attachToFolder(doc, models.FolderIDFavorites, p.ID, now)
	}

	doc.PushHistory(models.NewHistoryItem(uuid.NewString(), &p, models.ActionCreated, now))
	doc.Sync.PendingChanges++

	if err := r.store.SetAll(ctx, doc); err != nil {
		return nil, fmt.Errorf("adding prompt: %w", err)
	}
	return &p, nil
}

func (r *DocumentRepository) Update(ctx context.Context, id string, patch models.PromptPatch) (*models.Prompt, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating prompt: %w", err)
	}

	p, ok := doc.Prompts[id]
	if !ok || p.IsDeleted {
		return nil, common.ErrNotFound
	}

	now := time.Now().UTC()
	wasFavorite := p.IsFavorite

	p.Apply(patch)
	p.UpdatedAt = now
	p.Version++
	doc.Prompts[id] = p

	if wasFavorite != p.IsFavorite {
		if p.IsFavorite {
			attachToFolder(doc, models.FolderIDFavorites, id, now)
		} else {
			detachFromFolder(doc, models.FolderIDFavorites, id, now)
		}
	}

	doc.PushHistory(models.NewHistoryItem(uuid.NewString(), &p, models.ActionEdited, now))
	doc.Sync.PendingChanges++

	if err := r.store.SetAll(ctx, doc); err != nil {
		return nil, fmt.Errorf("updating prompt: %w", err)
	}
	return &p, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) (bool, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return false, fmt.Errorf("deleting prompt: %w", err)
	}

	p, ok := doc.Prompts[id]
	if !ok || p.IsDeleted {
		return false, nil
	}

	now := time.Now().UTC()
	p.IsDeleted = true
	p.UpdatedAt = now
	p.Version++
	doc.Prompts[id] = p

	// The id is dropped from every folder, not just root and favorites.
	for fid, f := range doc.Folders {
		if f.DetachPrompt(id) {
			f.UpdatedAt = now
			doc.Folders[fid] = f
		}
	}

	doc.PushHistory(models.NewHistoryItem(uuid.NewString(), &p, models.ActionDeleted, now))
	doc.Sync.PendingChanges++

	if err := r.store.SetAll(ctx, doc); err != nil {
		return false, fmt.Errorf("deleting prompt: %w", err)
	}
	return true, nil
}

func (r *DocumentRepository) Use(ctx context.Context, id string) (*models.Prompt, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("recording prompt use: %w", err)
	}

	p, ok := doc.Prompts[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}

	now := time.Now().UTC()
	p.Downloads++
	p.LastUsedAt = &now
	p.UpdatedAt = now
	doc.Prompts[id] = p

	doc.PushHistory(models.NewHistoryItem(uuid.NewString(), &p, models.ActionUsed, now))

	if err := r.store.SetAll(ctx, doc); err != nil {
		return nil, fmt.Errorf("recording prompt use: %w", err)
	}
	return &p, nil
}

func (r *DocumentRepository) Search(ctx context.Context, query string) ([]models.Prompt, error) {
	doc, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("searching prompts: %w", err)
	}

	result := make([]models.Prompt, 0)
	for _, p := range doc.Prompts {
		if p.IsDeleted {
			continue
		}
		if p.MatchesQuery(query) {
			result = append(result, p)
		}
	}
	return result, nil
}

// attachToFolder adds the prompt id to a folder's membership (idempotent)
// and refreshes the folder timestamp when something changed.
func attachToFolder(doc *models.Document, folderID, promptID string, now time.Time) {
	f, ok := doc.Folders[folderID]
	if !ok {
		return
	}
	if f.AttachPrompt(promptID) {
		f.UpdatedAt = now
		doc.Folders[folderID] = f
	}
}

// detachFromFolder removes the prompt id from a folder's membership.
func detachFromFolder(doc *models.Document, folderID, promptID string, now time.Time) {
	f, ok := doc.Folders[folderID]
	if !ok {
		return
	}
	if f.DetachPrompt(promptID) {
		f.UpdatedAt = now
		doc.Folders[folderID] = f
	}
}
