package cli

import (
	"bufio"
	"context"
	"os"

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

// App wires the document store, repositories and services behind the REPL
// commands.
type App struct {
	config   *config.Config
	store    *storage.SQLiteStore
	prompts  prompts.Repository
	folders  folders.Repository
	history  history.Log
	profile  profile.Repository
	view     *services.ViewService
	transfer *services.TransferService
	session  *services.SessionService
	log      logging.Logger
	reader   *bufio.Reader
	userName string
}

// NewApp opens the document database and assembles the application object.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing document store", "error", err.Error())
		return nil, err
	}

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
		transfer: services.NewTransferService(store, log),
		session:  services.NewSessionService(profileRepo),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}
