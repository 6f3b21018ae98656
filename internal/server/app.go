// Package server initializes and runs the main application: it selects the
// storage backend, wires services to the HTTP API, and handles graceful
// shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/dmitrijs2005/linkhub/internal/logging"
	"github.com/dmitrijs2005/linkhub/internal/server/config"
	"github.com/dmitrijs2005/linkhub/internal/server/httpapi"
	"github.com/dmitrijs2005/linkhub/internal/server/links"
	"github.com/dmitrijs2005/linkhub/internal/server/profile"
	"github.com/dmitrijs2005/linkhub/internal/server/shared/db"
	"github.com/dmitrijs2005/linkhub/internal/server/users"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	manager    db.RepositoryManager
	httpServer *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	zl := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger := logging.NewZerologLogger(zl)

	var manager db.RepositoryManager
	var err error

	if cfg.DatabaseDSN == "" {
		logger.Warn(context.Background(), "no database DSN configured, using in-memory store")
		manager = db.NewInMemoryRepositoryManager()
	} else {
		manager, err = db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	us := users.NewService(manager.Users(), logger, cfg)
	ls := links.NewService(manager.Links(), logger)
	ps := profile.NewService(manager.Users(), manager.Links())

	hs := httpapi.NewServer(cfg, logger, us, ls, ps)

	return &App{config: cfg, logger: logger, manager: manager, httpServer: hs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "error closing storage", "error", err.Error())
	}
}
