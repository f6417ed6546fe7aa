package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/nugomed/nugomed-api/internal/config"
	"github.com/nugomed/nugomed-api/internal/platform/postgres"
	"github.com/nugomed/nugomed-api/internal/platform/smtp"
	"github.com/nugomed/nugomed-api/internal/service/auth"
	"github.com/nugomed/nugomed-api/internal/service/purchase"
	"github.com/nugomed/nugomed-api/internal/store"
)

// application holds the shared application dependencies so construction and
// cleanup live in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (interfaces so tests can substitute fakes)
	userStore     store.UserStore
	surgeryStore  store.SurgeryStore
	tierListStore store.TierListStore
	partnerStore  store.PartnerStore
	customerStore store.CustomerStore
	buyStore      store.BuyStore
	emailStore    store.EmailStore

	// Services
	authenticator *auth.Authenticator
	purchases     *purchase.Service
	mailer        smtp.Mailer
}

// newApplication builds the dependency graph from configuration and an open
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, hasher, logger)
	buyStore := postgres.NewPostgresBuyStore(db, logger)
	tierListStore := postgres.NewPostgresTierListStore(db, logger)

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,

		userStore:     userStore,
		surgeryStore:  postgres.NewPostgresSurgeryStore(db, logger),
		tierListStore: tierListStore,
		partnerStore:  postgres.NewPostgresPartnerStore(db, logger),
		customerStore: postgres.NewPostgresCustomerStore(db, logger),
		buyStore:      buyStore,
		emailStore:    postgres.NewPostgresEmailStore(db, logger),

		authenticator: auth.NewAuthenticator(userStore, hasher, tokenService),
		purchases:     purchase.NewService(db, buyStore, tierListStore),
		mailer:        smtp.NewRelayMailer(cfg.SMTP),
	}
	return app, nil
}

// cleanup releases held resources. Safe to call once after the server has
// stopped serving requests.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		} else {
			app.logger.Info("database connection closed")
		}
	}
}
