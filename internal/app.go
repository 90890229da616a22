// internal/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	router "cardwallet/internal/api"
	"cardwallet/internal/api/handler"
	"cardwallet/internal/config"
	"cardwallet/internal/service"
	"cardwallet/internal/store"
	"cardwallet/internal/util"
)

// Application holds all the initialized components of the application.
type Application struct {
	// Set before Initialize to change where config is read from and logs go.
	ConfigPath string
	LogOutput  io.Writer

	Config *config.AppConfig
	Logger *slog.Logger

	// Card state owner
	Store *store.CardCollectionStore

	// Services
	CardService      service.CardService
	DashboardService service.DashboardService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	var (
		cfg *config.AppConfig
		err error
	)
	if app.ConfigPath != "" {
		cfg, err = config.LoadConfigFile(app.ConfigPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	level, err := util.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	util.InitLogger(app.LogOutput, level, cfg.LogFormat)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Initialize the card store
	var opts []store.Option
	if cfg.PromoteDefaultOnDelete {
		opts = append(opts, store.WithDefaultPromotion())
	}
	if cfg.SeedDemoCards {
		opts = append(opts, store.WithCards(store.DemoCards(nil)...))
	}
	app.Store = store.New(opts...)
	app.Logger.Info("Card store initialized.", "cards", app.Store.TotalCount(), "promote_default_on_delete", cfg.PromoteDefaultOnDelete)

	// 4. Initialize Services
	app.CardService = service.NewCardService(app.Store, app.Logger)
	app.DashboardService = service.NewDashboardService(app.CardService, cfg.UserName, time.Now())
	app.Logger.Info("Services initialized.")

	// 5. Initialize HTTP Handlers and Router
	cardHandler := handler.NewCardHandler(app.CardService, app.Logger)
	dashboardHandler := handler.NewDashboardHandler(app.DashboardService, app.Logger)
	app.HTTPHandler = router.NewRouter(cardHandler, dashboardHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
// The store lives only as long as the process, so nothing is flushed.
func (app *Application) Shutdown(ctx context.Context) error {
	if app.Logger == nil {
		return nil
	}
	snap := app.CardService.Snapshot(ctx)
	app.Logger.Info("Application shut down gracefully.", "cards", snap.Stats.Total)
	return nil
}
