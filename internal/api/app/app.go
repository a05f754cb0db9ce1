package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/offmenu/offmenu/internal/api/http"
	"github.com/offmenu/offmenu/internal/api/service"
	"github.com/offmenu/offmenu/internal/api/store"
	"github.com/offmenu/offmenu/internal/api/store/drivers/sqlite"
	"github.com/offmenu/offmenu/pkg/jwtx"
	"github.com/offmenu/offmenu/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the dashboard API with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   *jwtx.Signer
	keys     *jwtx.KeySet
	verifier *jwtx.Verifier

	accessService       *service.AccessService
	inviteService       *service.InviteService
	projectService      *service.ProjectService
	taskService         *service.TaskService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "offmenu-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initKeys(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("offmenu api starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down offmenu api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("offmenu api stopped")
	return nil
}

// initDatabase opens the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initKeys sets up the session signing key. A configured PEM file keeps
// sessions valid across restarts; without one an ephemeral key is
// generated and every session dies with the process.
func (app *Application) initKeys() error {
	var (
		signer *jwtx.Signer
		err    error
	)

	if app.cfg.SigningKey != "" {
		pemBytes, readErr := os.ReadFile(app.cfg.SigningKey)
		if readErr != nil {
			return fmt.Errorf("failed to read signing key: %w", readErr)
		}
		signer, err = jwtx.NewSigner("session-1", pemBytes)
	} else {
		app.logger.Warn("no signing key configured, generating ephemeral key")
		signer, err = jwtx.GenerateSigner("session-1")
	}
	if err != nil {
		return fmt.Errorf("failed to initialize signing key: %w", err)
	}
	if err := signer.Validate(); err != nil {
		return err
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return fmt.Errorf("failed to register signing key: %w", err)
	}

	app.signer = signer
	app.keys = keys
	app.verifier = jwtx.NewVerifier(keys, app.cfg.Issuer, []string{app.cfg.Audience})
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.accessService = &service.AccessService{
		Store:      app.db,
		Mailer:     service.LogMailer{},
		Signer:     app.signer,
		BaseURL:    app.cfg.BaseURL,
		Issuer:     app.cfg.Issuer,
		Audience:   []string{app.cfg.Audience},
		SessionTTL: app.cfg.SessionTTL,
	}

	app.inviteService = &service.InviteService{Store: app.db}
	app.projectService = &service.ProjectService{Store: app.db}
	app.taskService = &service.TaskService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AccessService = app.accessService
	router.InviteService = app.inviteService
	router.ProjectService = app.projectService
	router.TaskService = app.taskService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
