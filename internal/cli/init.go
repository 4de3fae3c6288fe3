// Package cli implements the fintrack command line interface. Commands are
// short lived: each invocation loads configuration, opens the credential
// store, performs one operation against the API, and exits.
package cli

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"fintrack/internal/api"
	"fintrack/internal/config"
	"fintrack/internal/credstore"
	"fintrack/internal/log"
	"fintrack/internal/services"
	"fintrack/internal/session"
)

// App bundles the configured dependencies shared by every command.
type App struct {
	Config  *config.Config
	Logger  *log.Logger
	Store   *credstore.Store
	Session *session.Manager

	Transactions *api.TransactionsClient
	Categories   *api.CategoriesClient
	Budgets      *api.BudgetsClient
	Dashboard    *api.DashboardClient
	Reports      *api.ReportsClient
	Settings     *api.SettingsClient
	Status       *services.StatusService
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the given level and sets
// the result as the default logger.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.Config{
		Level:     log.ParseLevel(level),
		Component: log.ComponentCLI,
	})
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err.Error())
		os.Exit(1)
	}
	return cfg
}

// NewApp wires the full application from the environment. Any failure is
// fatal: a CLI invocation cannot do anything useful without its store.
func NewApp() *App {
	LoadEnvFile()
	logger := SetupLogger(os.Getenv("FINTRACK_LOG_LEVEL"))
	cfg := LoadAndValidateConfig(logger)
	logger = SetupLogger(cfg.LogLevel)

	store, err := credstore.Open(cfg.CredentialDBPath)
	if err != nil {
		logger.Error("Failed to open credential store", log.FieldError, err.Error(), log.FieldPath, cfg.CredentialDBPath)
		os.Exit(1)
	}

	mgr := session.NewManager(cfg.APIBaseURL, store, cfg.HTTPTimeout, logger)
	transactions := api.NewTransactionsClient(mgr)
	budgets := api.NewBudgetsClient(mgr)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Session: mgr,

		Transactions: transactions,
		Categories:   api.NewCategoriesClient(mgr, cfg.CategoryCacheTTL),
		Budgets:      budgets,
		Dashboard:    api.NewDashboardClient(mgr, logger),
		Reports:      api.NewReportsClient(mgr),
		Settings:     api.NewSettingsClient(mgr),
		Status:       services.NewStatusService(budgets, transactions),
	}
}

// Close releases the credential store.
func (a *App) Close() {
	if a.Store != nil {
		_ = a.Store.Close()
	}
}

// sensible timeout guard for a whole command, well above the per-request
// HTTP timeout so the refresh-and-replay pipeline can finish.
const commandTimeout = 2 * time.Minute
