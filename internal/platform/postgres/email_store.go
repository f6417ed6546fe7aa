package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/nugomed/nugomed-api/internal/domain"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
	"github.com/nugomed/nugomed-api/internal/store"
)

// PostgresEmailStore implements store.EmailStore using a PostgreSQL
// database as the storage backend.
type PostgresEmailStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEmailStore creates a new PostgreSQL implementation of the
// EmailStore interface.
func NewPostgresEmailStore(db store.DBTX, logger *slog.Logger) *PostgresEmailStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresEmailStore{
		db:     db,
		logger: logger.With(slog.String("component", "email_store")),
	}
}

// Ensure PostgresEmailStore implements store.EmailStore.
var _ store.EmailStore = (*PostgresEmailStore)(nil)

// List implements store.EmailStore.List.
func (s *PostgresEmailStore) List(ctx context.Context, page store.Page) ([]domain.Email, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, mail_from, mail_to, subject, message
		FROM emails
		ORDER BY id ASC
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, page.Skip, page.Limit)
	if err != nil {
		log.Error("failed to list emails",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	emails := []domain.Email{}
	for rows.Next() {
		var e domain.Email
		if err := rows.Scan(&e.ID, &e.MailFrom, &e.MailTo, &e.Subject, &e.Message); err != nil {
			log.Error("failed to scan email row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		emails = append(emails, e)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return emails, nil
}

// GetByID implements store.EmailStore.GetByID.
func (s *PostgresEmailStore) GetByID(ctx context.Context, id int64) (*domain.Email, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, mail_from, mail_to, subject, message
		FROM emails
		WHERE id = $1
	`

	var e domain.Email
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.MailFrom,
		&e.MailTo,
		&e.Subject,
		&e.Message,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEmailNotFound
		}
		log.Error("failed to get email by ID",
			slog.String("error", err.Error()),
			slog.Int64("email_id", id))
		return nil, MapError(err)
	}

	return &e, nil
}

// Create implements store.EmailStore.Create.
func (s *PostgresEmailStore) Create(ctx context.Context, email *domain.Email) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := email.Validate(); err != nil {
		log.Warn("email validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO emails (mail_from, mail_to, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		email.MailFrom,
		email.MailTo,
		email.Subject,
		email.Message,
	).Scan(&email.ID)
	if err != nil {
		log.Error("failed to create email record",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("email record created", slog.Int64("email_id", email.ID))
	return nil
}

// WithTx implements store.EmailStore.WithTx.
func (s *PostgresEmailStore) WithTx(tx *sql.Tx) store.EmailStore {
	return &PostgresEmailStore{
		db:     tx,
		logger: s.logger,
	}
}
