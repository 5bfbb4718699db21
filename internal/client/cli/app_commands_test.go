package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codamon/immersive-prompt/internal/client/config"
	"github.com/codamon/immersive-prompt/internal/client/repositories/folders"
	"github.com/codamon/immersive-prompt/internal/client/repositories/history"
	"github.com/codamon/immersive-prompt/internal/client/repositories/profile"
	"github.com/codamon/immersive-prompt/internal/client/repositories/prompts"
	"github.com/codamon/immersive-prompt/internal/client/services"
	"github.com/codamon/immersive-prompt/internal/client/storage"
	"github.com/codamon/immersive-prompt/internal/logging"

	_ "modernc.org/sqlite"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (testLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (testLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (testLogger) Error(ctx context.Context, msg string, args ...any) {}
func (l testLogger) With(args ...any) logging.Logger                  { return l }

// newTestApp assembles an App over an in-memory database with scripted
// stdin-style input.
func newTestApp(t *testing.T, input string) *App {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, storage.RunMigrations(context.Background(), db))
	store := storage.NewSQLiteStore(db)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	promptRepo := prompts.NewDocumentRepository(store)
	profileRepo := profile.NewDocumentRepository(store)

	return &App{
		config:   cfg,
		store:    store,
		prompts:  promptRepo,
		folders:  folders.NewDocumentRepository(store),
		history:  history.NewDocumentLog(store),
		profile:  profileRepo,
		view:     services.NewViewService(promptRepo),
		transfer: services.NewTransferService(store, testLogger{}),
		session:  services.NewSessionService(profileRepo),
		log:      testLogger{},
		reader:   bufio.NewReader(strings.NewReader(input)),
	}
}

// captureOutput swaps printlnFn for a recorder and returns the joined lines.
func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var sb strings.Builder
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		fmt.Fprintln(&sb, args...)
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &sb
}

func TestApp_AddThenListAndShow(t *testing.T) {
	// add: title, content lines, empty line, description, category, tags
	a := newTestApp(t, "Review helper\nReview this diff\n\nFor code reviews\ndevelopment\ngo, review\n")
	out := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, a.Add(ctx))
	assert.Contains(t, out.String(), "Created:")

	items, err := a.prompts.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Review helper", items[0].Title)
	assert.Equal(t, []string{"go", "review"}, items[0].Tags)

	out.Reset()
	require.NoError(t, a.Show(ctx, items[0].ID))
	assert.Contains(t, out.String(), "Review this diff")

	out.Reset()
	require.NoError(t, a.List(ctx, ""))
	assert.Contains(t, out.String(), "Review helper")
}

func TestApp_FavoriteToggle(t *testing.T) {
	a := newTestApp(t, "T\nbody\n\n\n\n\n")
	out := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, a.Add(ctx))
	items, err := a.prompts.List(ctx)
	require.NoError(t, err)
	id := items[0].ID

	out.Reset()
	require.NoError(t, a.Favorite(ctx, id))
	assert.Contains(t, out.String(), "Added to favorites")

	p, err := a.prompts.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, p.IsFavorite)

	out.Reset()
	require.NoError(t, a.Favorite(ctx, id))
	assert.Contains(t, out.String(), "Removed from favorites")
}

func TestApp_UseAndDeleteReportMissingIds(t *testing.T) {
	a := newTestApp(t, "")
	out := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, a.Use(ctx, "absent"))
	assert.Contains(t, out.String(), "No such prompt")

	out.Reset()
	require.NoError(t, a.Delete(ctx, "absent"))
	assert.Contains(t, out.String(), "No such prompt")
}

func TestApp_FolderCommands(t *testing.T) {
	a := newTestApp(t, "Work\nproject prompts\n")
	out := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, a.AddFolder(ctx))
	assert.Contains(t, out.String(), "Created folder:")

	out.Reset()
	require.NoError(t, a.Folders(ctx))
	assert.Contains(t, out.String(), "All prompts")
	assert.Contains(t, out.String(), "Work")

	out.Reset()
	require.NoError(t, a.DeleteFolder(ctx, "root"))
	assert.Contains(t, out.String(), "protected")

	out.Reset()
	require.NoError(t, a.DeleteFolder(ctx, "absent"))
	assert.Contains(t, out.String(), "No such folder")
}

func TestApp_HistoryAndSettings(t *testing.T) {
	a := newTestApp(t, "T\nbody\n\n\n\n\n")
	out := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, a.History(ctx, ""))
	assert.Contains(t, out.String(), "No activity yet")

	require.NoError(t, a.Add(ctx))

	out.Reset()
	require.NoError(t, a.History(ctx, "1"))
	assert.Contains(t, out.String(), "created")

	out.Reset()
	require.NoError(t, a.History(ctx, "nope"))
	assert.Contains(t, out.String(), "Usage: history")

	out.Reset()
	require.NoError(t, a.Settings(ctx))
	assert.Contains(t, out.String(), "Theme:")
}

func TestApp_ExportImportRoundTripThroughFiles(t *testing.T) {
	a := newTestApp(t, "T\nbody\n\n\n\n\n")
	out := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, a.Add(ctx))

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, a.Export(ctx, path))
	assert.Contains(t, out.String(), "Exported to:")

	// A second app imports the backup.
	b := newTestApp(t, "")
	out.Reset()
	require.NoError(t, b.Import(ctx, path))
	assert.Contains(t, out.String(), "Imported from:")

	items, err := b.prompts.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "T", items[0].Title)
}

func TestApp_ImportRejectsBadFile(t *testing.T) {
	a := newTestApp(t, "")
	out := captureOutput(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"prompts":{}}`), 0o600))

	require.NoError(t, a.Import(ctx, path))
	assert.Contains(t, out.String(), "Import failed")
}

func TestApp_ResetRequiresConfirmation(t *testing.T) {
	a := newTestApp(t, "no\nyes\n")
	out := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, a.Reset(ctx))
	assert.Contains(t, out.String(), "Aborted")

	out.Reset()
	require.NoError(t, a.Reset(ctx))
	assert.Contains(t, out.String(), "has been reset")
}

func TestApp_LoginLogout(t *testing.T) {
	a := newTestApp(t, "")
	out := captureOutput(t)
	ctx := context.Background()

	origText, origToken := getSimpleText, getToken
	t.Cleanup(func() { getSimpleText, getToken = origText, origToken })

	answers := []string{"Alice", "alice@example.com"}
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
	getToken = func(io.Writer) ([]byte, error) { return []byte("tok"), nil }

	require.NoError(t, a.Login(ctx))
	assert.Contains(t, out.String(), "Logged in as: Alice")
	assert.Equal(t, "Alice", a.userName)
	assert.Contains(t, a.getStatus(), "Alice")

	out.Reset()
	require.NoError(t, a.Logout(ctx))
	assert.Contains(t, out.String(), "Logged out")
	assert.Empty(t, a.userName)
	assert.Empty(t, a.getStatus())
}
