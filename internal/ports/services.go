package ports

import (
	"context"

	"github.com/finchbooks/invoice-service/internal/domain/invoice"
)

// MutationResult is the outcome of a create/update/delete call. Exactly one
// terminal state applies:
//
//   - Rejected: Errors is non-nil (per-field messages) and Message carries the
//     generic summary. Persistence was never attempted.
//   - Failed: Err is non-nil, classified against the domain sentinels
//     (errors.Is(Err, domain.ErrNotFound) distinguishes a missing record from
//     a connectivity failure); Message carries the caller-facing text.
//   - Committed: Errors and Err are nil. NavigateTo names the view the caller's
//     session should transition to (empty for delete, which only refreshes the
//     listing it was issued from); Message carries the acknowledgment, if any.
//
// Modeling the redirect as result data keeps the operation's completion an
// explicit, inspectable outcome instead of a non-local transfer, and returning
// failures as values forces callers to handle the failure path.
type MutationResult struct {
	Errors     map[string][]string
	Message    string
	NavigateTo string
	Err        error
}

// Committed reports whether the mutation reached the store and was confirmed.
func (r MutationResult) Committed() bool {
	return r.Errors == nil && r.Err == nil
}

// Rejected reports whether validation stopped the mutation before persistence.
func (r MutationResult) Rejected() bool {
	return r.Errors != nil
}

// InvoiceService defines the service port for invoice mutations and reads.
// Implemented by the application layer; called by inbound adapters (handlers).
type InvoiceService interface {
	// Create validates the draft, persists a new invoice (the store assigns
	// the identifier, the service assigns today's date), and on success
	// invalidates the cached invoice views. Exactly one insert attempt per
	// call; the operation is not idempotent and is never retried.
	Create(ctx context.Context, draft invoice.Draft) MutationResult

	// Update validates the draft and rewrites customerId/amount/status of the
	// identified record in a single atomic statement. Id and date are never
	// touched. An id matching no record is reported as a distinct not-found
	// failure, never as silent success.
	Update(ctx context.Context, id string, draft invoice.Draft) MutationResult

	// Delete removes the identified record and invalidates the listing cache.
	// No navigation is signaled: deletion happens from within the listing
	// view, so only a refresh is needed. A delete that already took effect is
	// not reported as a failure.
	Delete(ctx context.Context, id string) MutationResult

	// List returns all stored invoices; the listing view renders this.
	List(ctx context.Context) ([]invoice.Record, error)

	// Get returns a single stored invoice.
	// Returns domain.ErrNotFound if the id matches no record.
	Get(ctx context.Context, id string) (*invoice.Record, error)
}
