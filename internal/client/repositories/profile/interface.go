package profile

import (
	"context"

	"github.com/codamon/immersive-prompt/internal/client/models"
)

// Repository describes access to the two singleton records of the document:
// user settings and the local user profile. Both are plain merge-updates
// with no relational invariants.
type Repository interface {
	// Settings returns the current settings record.
	Settings(ctx context.Context) (*models.Settings, error)

	// UpdateSettings shallow-merges the patch over the current settings and
	// returns the merged record.
	UpdateSettings(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error)

	// User returns the local user profile.
	User(ctx context.Context) (*models.User, error)

	// UpdateUser shallow-merges the patch over the profile, refreshing its
	// UpdatedAt, and returns the merged record.
	UpdateUser(ctx context.Context, patch models.UserPatch) (*models.User, error)
}
