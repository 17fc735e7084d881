// Package server initializes and runs the main application server.
// It opens the database, applies migrations, wires the auth service,
// handles graceful shutdown, and starts the HTTP server.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/minjongk/teamauth/internal/logging"
	"github.com/minjongk/teamauth/internal/passhash"
	"github.com/minjongk/teamauth/internal/server/auth"
	"github.com/minjongk/teamauth/internal/server/config"
	"github.com/minjongk/teamauth/internal/server/httpapi"
	"github.com/minjongk/teamauth/internal/server/repositories/repomanager"
	"github.com/minjongk/teamauth/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	authService *services.AuthService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	if cfg.SecretKey == config.DefaultSecretKey {
		logger.Warn(ctx, "signing secret is the built-in default, tokens are unsafe; set JWT_SECRET")
	}

	rm := repomanager.NewPostgresRepositoryManager()

	db, err := repomanager.Open(ctx, cfg.DatabaseDSN, cfg.DBConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	hasher := passhash.New(cfg.HashIterations)
	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	as := services.NewAuthService(rm.Users(db), hasher, tokens, logger)

	return &App{config: cfg, logger: logger, db: db, authService: as}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.authService, app.logger, app.config.CORSAllowedOrigin)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
