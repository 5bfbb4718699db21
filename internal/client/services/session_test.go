package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codamon/immersive-prompt/internal/client/models"
	"github.com/codamon/immersive-prompt/internal/client/repositories/profile"
	"github.com/codamon/immersive-prompt/internal/client/storage"

	_ "modernc.org/sqlite"
)

func setupSession(t *testing.T) (*SessionService, profile.Repository) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, storage.RunMigrations(context.Background(), db))
	repo := profile.NewDocumentRepository(storage.NewSQLiteStore(db))
	return NewSessionService(repo), repo
}

func TestLogin_AttachesAccount(t *testing.T) {
	s, repo := setupSession(t)
	ctx := context.Background()

	u, err := s.Login(ctx, "Alice", "alice@example.com", []byte("tok-123"))
	require.NoError(t, err)

	assert.True(t, u.IsLoggedIn)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.Equal(t, "Alice", u.Name)
	require.NotNil(t, u.Email)
	assert.Equal(t, "alice@example.com", *u.Email)
	require.NotNil(t, u.AuthToken)
	assert.Equal(t, "tok-123", *u.AuthToken)

	stored, err := repo.User(ctx)
	require.NoError(t, err)
	assert.True(t, stored.IsLoggedIn)
}

func TestLogin_EmptyNameKeepsStoredName(t *testing.T) {
	s, repo := setupSession(t)
	ctx := context.Background()

	before, err := repo.User(ctx)
	require.NoError(t, err)

	u, err := s.Login(ctx, "", "", []byte("tok"))
	require.NoError(t, err)

	assert.Equal(t, before.Name, u.Name)
	assert.Nil(t, u.Email)
	assert.True(t, u.IsLoggedIn)
}

func TestLogout_DetachesAccountAndClearsToken(t *testing.T) {
	s, _ := setupSession(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "Alice", "", []byte("tok"))
	require.NoError(t, err)

	u, err := s.Logout(ctx)
	require.NoError(t, err)

	assert.False(t, u.IsLoggedIn)
	assert.Equal(t, models.RoleAnonymous, u.Role)
	assert.Nil(t, u.AuthToken)
	assert.Nil(t, u.RemoteID)
	assert.Nil(t, u.TokenExpiry)
	// The local profile itself survives a logout.
	assert.Equal(t, "Alice", u.Name)
}
