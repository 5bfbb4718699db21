package services

import (
	"context"
	"fmt"

	"github.com/codamon/immersive-prompt/internal/client/models"
	"github.com/codamon/immersive-prompt/internal/client/repositories/profile"
)

// SessionService maintains the local user record when a marketplace account
// is attached or detached. It only updates the stored profile; the token is
// kept opaque for a future sync implementation and is never sent anywhere.
type SessionService struct {
	profile profile.Repository
}

// NewSessionService returns a session service over the given repository.
func NewSessionService(repo profile.Repository) *SessionService {
	return &SessionService{profile: repo}
}

// Login marks the profile as logged in with the given display name, optional
// email and auth token. Empty name or email leave the stored values alone.
func (s *SessionService) Login(ctx context.Context, name, email string, token []byte) (*models.User, error) {
	loggedIn := true
	role := models.RoleUser
	tok := string(token)

	patch := models.UserPatch{
		IsLoggedIn: &loggedIn,
		Role:       &role,
		AuthToken:  &tok,
	}
	if name != "" {
		patch.Name = &name
	}
	if email != "" {
		patch.Email = &email
	}

	u, err := s.profile.UpdateUser(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}
	return u, nil
}

// Logout detaches the account: the token and remote identity are cleared
// and the profile returns to the anonymous role.
func (s *SessionService) Logout(ctx context.Context) (*models.User, error) {
	loggedIn := false
	role := models.RoleAnonymous

	u, err := s.profile.UpdateUser(ctx, models.UserPatch{
		IsLoggedIn: &loggedIn,
		Role:       &role,
		ClearAuth:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("logging out: %w", err)
	}
	return u, nil
}
