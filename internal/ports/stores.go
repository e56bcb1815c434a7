package ports

import (
	"context"

	"github.com/finchbooks/invoice-service/internal/domain/invoice"
)

// InvoiceStore defines the persistence port for the invoices relation.
// Implemented by the outbound storage adapter; called by the application
// layer. Every method executes a single parameterized statement — all
// interpolated values are data, never statement text — and each statement is
// atomic: it applies fully or not at all.
type InvoiceStore interface {
	// Insert persists a new record and returns it with the store-assigned
	// identifier. The caller supplies customer id, amount in minor units,
	// status, and creation date.
	Insert(ctx context.Context, rec invoice.Record) (*invoice.Record, error)

	// Update rewrites customer_id, amount, and status of the identified row.
	// Id and date are never modified. Returns domain.ErrNotFound when the id
	// matches no row (zero rows affected).
	Update(ctx context.Context, id string, inv invoice.Invoice) error

	// Delete removes the identified row. Returns domain.ErrNotFound when the
	// id matches no row.
	Delete(ctx context.Context, id string) error

	// GetByID returns the identified row, or domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*invoice.Record, error)

	// List returns all rows ordered by date, newest first.
	List(ctx context.Context) ([]invoice.Record, error)
}
