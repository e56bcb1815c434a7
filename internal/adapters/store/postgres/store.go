// Package postgres implements the invoice store port against PostgreSQL
// using pgx. Every mutation is a single parameterized statement; values are
// always bound parameters, never interpolated statement text.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finchbooks/invoice-service/internal/domain"
	"github.com/finchbooks/invoice-service/internal/domain/invoice"
	"github.com/finchbooks/invoice-service/internal/platform/config"
	"github.com/finchbooks/invoice-service/internal/ports"
)

// Compile-time check that Store implements ports.InvoiceStore.
var _ ports.InvoiceStore = (*Store)(nil)

// Store executes invoice statements against a pgx connection pool.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// New connects a pool using the given database config and verifies the
// connection with a ping.
func New(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &Store{pool: pool, logger: logger}, nil
}

// EnsureSchema creates the invoices relation if it does not exist. The status
// check constraint mirrors the schema's enum so that even a bypassed
// validation cannot persist an unknown status.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS invoices (
			id          UUID PRIMARY KEY,
			customer_id TEXT   NOT NULL,
			amount      BIGINT NOT NULL,
			status      TEXT   NOT NULL CHECK (status IN ('pending', 'paid')),
			date        TEXT   NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensuring invoices table: %w", err)
	}
	return nil
}

// Insert persists a new record with a freshly assigned identifier and returns
// the stored row.
func (s *Store) Insert(ctx context.Context, rec invoice.Record) (*invoice.Record, error) {
	rec.ID = uuid.NewString()

	_, err := s.pool.Exec(ctx, `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)
	`, rec.ID, rec.CustomerID, rec.AmountCents, rec.Status.String(), rec.Date)
	if err != nil {
		return nil, classify(err)
	}

	return &rec, nil
}

// Update rewrites customer_id, amount, and status of the identified row in
// one atomic statement. Id and date are never part of the SET list. Zero rows
// affected is reported as domain.ErrNotFound, distinct from a connectivity
// failure.
func (s *Store) Update(ctx context.Context, id string, inv invoice.Invoice) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`, inv.CustomerID, invoice.ToCents(inv.Amount), inv.Status.String(), id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s", domain.ErrNotFound, id)
	}
	return nil
}

// Delete removes the identified row. Zero rows affected is reported as
// domain.ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s", domain.ErrNotFound, id)
	}
	return nil
}

// GetByID returns the identified row, or domain.ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id string) (*invoice.Record, error) {
	var rec invoice.Record
	var status string

	err := s.pool.QueryRow(ctx, `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1
	`, id).Scan(&rec.ID, &rec.CustomerID, &rec.AmountCents, &status, &rec.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: invoice %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, classify(err)
	}

	rec.Status = invoice.Status(status)
	return &rec, nil
}

// List returns all rows ordered by date, newest first.
func (s *Store) List(ctx context.Context) ([]invoice.Record, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		ORDER BY date DESC, id
	`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var records []invoice.Record
	for rows.Next() {
		var rec invoice.Record
		var status string
		if err := rows.Scan(&rec.ID, &rec.CustomerID, &rec.AmountCents, &status, &rec.Date); err != nil {
			return nil, fmt.Errorf("scanning invoice row: %w", err)
		}
		rec.Status = invoice.Status(status)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return records, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Name identifies the store in health check results.
func (s *Store) Name() string {
	return "postgres"
}

// HealthCheck reports database availability via a pool ping.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// integrityViolationClass is the leading SQLSTATE class for constraint
// violations (23xxx).
const integrityViolationClass = "23"

// classify maps a pgx error onto the domain sentinels: constraint violations
// become ErrConflict, everything else ErrUnavailable. The original error text
// is preserved for logs but callers branch on the sentinel only.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, integrityViolationClass) {
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.Message)
	}
	return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
}
