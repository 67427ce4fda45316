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

	httpapi "github.com/SPMA4P97/jess-credentials/internal/portal/http"
	"github.com/SPMA4P97/jess-credentials/internal/portal/service"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store/drivers/localkv"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store/drivers/sqlite"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store/drivers/supabase"
	"github.com/SPMA4P97/jess-credentials/pkg/cryptox"
	"github.com/SPMA4P97/jess-credentials/pkg/idx"
	"github.com/SPMA4P97/jess-credentials/pkg/jwtx"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the credentials portal with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db          store.Store
	credentials store.Credentials // may be remote while db stays local
	signer      *jwtx.EdDSASigner
	verifier    jwtx.Verifier

	// Services
	authService         *service.AuthService
	credentialService   *service.CredentialService
	lookupService       *service.LookupService
	userService         *service.UserService
	organizationService *service.OrganizationService
	roleTitleService    *service.RoleTitleService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "jess-credentials",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initStore(); err != nil {
		return nil, err
	}

	if err := app.initSessionKeys(); err != nil {
		return nil, err
	}

	app.initServices()

	if err := app.seedAdmin(); err != nil {
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("credentials portal starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down credentials portal...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("credentials portal stopped")
	return nil
}

// initStore initializes the configured store driver and applies migrations.
// When a Supabase project is configured, only the credentials repo moves
// remote; users and picklists always stay local.
func (app *Application) initStore() error {
	switch app.cfg.StoreDriver {
	case "sqlite", "":
		// Pragmas (WAL, busy timeout, FKs) are applied by NewStore.
		db, err := sqlite.NewStore("file:" + app.cfg.DatabaseFile)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db

		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		app.logger.Info("database migrations applied successfully")

	case "localkv":
		db, err := localkv.NewStore(app.cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to initialize data dir: %w", err)
		}
		app.db = db
		app.logger.Info("file-backed store initialized", "dir", app.cfg.DataDir)

	default:
		return fmt.Errorf("unknown store driver %q", app.cfg.StoreDriver)
	}

	app.credentials = app.db.Credentials()
	if app.cfg.SupabaseURL != "" {
		app.credentials = supabase.New(supabase.Config{
			BaseURL:       app.cfg.SupabaseURL,
			APIKey:        app.cfg.SupabaseAPIKey,
			Table:         app.cfg.SupabaseTable,
			PublicBaseURL: app.cfg.PublicBaseURL,
		})
		app.logger.Info("credentials persist remotely", "url", app.cfg.SupabaseURL)
	}

	return nil
}

// initSessionKeys generates the ephemeral Ed25519 signing key. A restart
// invalidates outstanding sessions, which is fine for an admin portal.
func (app *Application) initSessionKeys() error {
	pemKey, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return fmt.Errorf("failed to generate session key: %w", err)
	}

	signer, err := jwtx.NewSignerEdDSA(idx.New().String(), pemKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session signer: %w", err)
	}
	if err := signer.Validate(); err != nil {
		return err
	}

	app.signer = signer
	app.verifier = jwtx.VerifierFor(signer, app.cfg.Issuer)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:    app.db,
		Signer:   app.signer,
		Issuer:   app.cfg.Issuer,
		TokenTTL: app.cfg.SessionTTL,
	}

	app.credentialService = &service.CredentialService{Credentials: app.credentials}
	app.lookupService = &service.LookupService{Credentials: app.credentials}
	app.userService = &service.UserService{Store: app.db}
	app.organizationService = &service.OrganizationService{Organizations: app.db.Organizations()}
	app.roleTitleService = &service.RoleTitleService{RoleTitles: app.db.RoleTitles()}
}

// seedAdmin creates the initial admin account on an empty user table so a
// fresh deployment has a working login.
func (app *Application) seedAdmin() error {
	if app.cfg.AdminPassword == "" {
		app.logger.Warn("no admin password configured, skipping admin seeding")
		return nil
	}

	ctx := context.Background()
	if err := app.userService.EnsureAdmin(ctx,
		app.cfg.AdminEmail, app.cfg.AdminUsername, app.cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.cfg.Issuer,
		app.cfg.PublicBaseURL,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.CredentialService = app.credentialService
	router.LookupService = app.lookupService
	router.UserService = app.userService
	router.OrganizationService = app.organizationService
	router.RoleTitleService = app.roleTitleService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
