package folders

import (
	"context"

	"github.com/codamon/immersive-prompt/internal/client/models"
)

// Repository describes CRUD operations over the folder collection. The two
// system folders (root, favorites) are protected: they can never be deleted
// and their name and parent can never change.
type Repository interface {
	// List returns every folder. Callers sort by Position for display.
	List(ctx context.Context) ([]models.Folder, error)

	// Get returns the folder, or common.ErrNotFound.
	Get(ctx context.Context, id string) (*models.Folder, error)

	// Contents resolves the folder's prompt ids to live, non-deleted
	// prompts, silently dropping ids that no longer resolve. An unknown
	// folder yields an empty result.
	Contents(ctx context.Context, id string) ([]models.Prompt, error)

	// Add creates a user folder from the draft. New folders are not
	// attached to the root folder's membership.
	Add(ctx context.Context, draft models.FolderDraft) (*models.Folder, error)

	// Update merges the patch over an existing folder. Patching the name or
	// parent of a system folder fails with common.ErrProtectedFolder.
	Update(ctx context.Context, id string, patch models.FolderPatch) (*models.Folder, error)

	// Delete removes a user folder, migrating its prompt ids into the root
	// folder first. Returns (false, nil) for an absent folder and
	// common.ErrProtectedFolder for a system one.
	Delete(ctx context.Context, id string) (bool, error)
}
