package prompts

import (
	"context"

	"github.com/codamon/immersive-prompt/internal/client/models"
)

// Repository describes CRUD, search and usage-tracking operations over the
// prompt collection. Implementations operate on the shared document store,
// maintaining folder membership, the history log and the pending-changes
// counter as side effects.
type Repository interface {
	// List returns all prompts that are not soft-deleted. Iteration order is
	// not guaranteed; callers needing a stable order must sort explicitly.
	List(ctx context.Context) ([]models.Prompt, error)

	// Get returns the prompt, or common.ErrNotFound if it is absent or
	// soft-deleted.
	Get(ctx context.Context, id string) (*models.Prompt, error)

	// Add creates a prompt from the draft, attaches it to the root folder
	// (and favorites when the draft is favorited) and records a "created"
	// history entry.
	Add(ctx context.Context, draft models.PromptDraft) (*models.Prompt, error)

	// Update merges the patch over an existing prompt, bumping its version.
	// Favorites membership follows IsFavorite transitions. Returns
	// common.ErrNotFound for absent or soft-deleted prompts.
	Update(ctx context.Context, id string, patch models.PromptPatch) (*models.Prompt, error)

	// Delete soft-deletes the prompt and removes its id from every folder.
	// Returns (false, nil) if the prompt is absent or already deleted.
	Delete(ctx context.Context, id string) (bool, error)

	// Use records a usage: downloads are incremented and lastUsedAt is
	// refreshed, without bumping the version. Returns (nil, nil) if the
	// prompt is absent or deleted.
	Use(ctx context.Context, id string) (*models.Prompt, error)

	// Search returns non-deleted prompts matching a case-insensitive
	// substring query over title, content, description or tags.
	Search(ctx context.Context, query string) ([]models.Prompt, error)
}
