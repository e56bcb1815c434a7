// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/finchbooks/invoice-service/internal/app/fanout"
	"github.com/finchbooks/invoice-service/internal/domain"
	"github.com/finchbooks/invoice-service/internal/domain/invoice"
	"github.com/finchbooks/invoice-service/internal/ports"
)

// Logical view paths rendered from invoice data. ListingPath is both the
// navigation target after a committed create/update and the cache key of the
// listing view; DashboardPath is additionally invalidated because the
// dashboard summarizes the same data.
const (
	ListingPath   = "/dashboard/invoices"
	DashboardPath = "/dashboard"
)

// invalidationWorkers bounds the concurrent view invalidations per mutation.
const invalidationWorkers = 2

// Caller-facing messages for each terminal mutation state.
const (
	msgCreateMissingFields = "Missing Fields, Failed to Create Invoice."
	msgUpdateMissingFields = "Missing Fields, Failed to Update Invoice."
	msgCreateDBError       = "Database Error: Failed to Create Invoice"
	msgUpdateDBError       = "Database Error: Failed to Update Invoice"
	msgDeleteDBError       = "Database Error: Failed to Delete Invoice"
	msgUpdateNotFound      = "Invoice Not Found, Failed to Update Invoice."
	msgDeleteNotFound      = "Invoice Not Found, Failed to Delete Invoice."
	msgDeleted             = "Deleted Invoice."
)

// Compile-time check that InvoiceService implements ports.InvoiceService.
var _ ports.InvoiceService = (*InvoiceService)(nil)

// InvoiceService implements ports.InvoiceService: it validates untrusted form
// drafts against the invoice schema, executes exactly one persistence
// statement per mutation, and refreshes the cached invoice views only after a
// confirmed write. Every invocation is stateless aside from the draft and
// identifier it receives; no state is held across calls.
type InvoiceService struct {
	schema invoice.Schema
	store  ports.InvoiceStore
	views  ports.ViewCache
	logger *slog.Logger
	now    func() time.Time
}

// NewInvoiceService creates an InvoiceService. The schema is the form variant
// of the invoice schema (id and date omitted), constructed once and shared by
// Create and Update. The store executes the persistence statements; views
// receives the post-commit invalidations.
func NewInvoiceService(schema invoice.Schema, store ports.InvoiceStore, views ports.ViewCache, logger *slog.Logger) *InvoiceService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &InvoiceService{
		schema: schema,
		store:  store,
		views:  views,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates the draft and persists a new invoice. Validation failure
// returns the aggregated field errors without touching the store. The insert
// is attempted exactly once: it is not idempotent, and a blind retry could
// create a duplicate record.
func (s *InvoiceService) Create(ctx context.Context, draft invoice.Draft) ports.MutationResult {
	s.logger.InfoContext(ctx, "creating invoice")

	inv, verr := s.schema.ParseSafe(draft)
	if verr != nil {
		return ports.MutationResult{Errors: verr.Fields, Message: msgCreateMissingFields}
	}

	rec := invoice.Record{
		CustomerID:  inv.CustomerID,
		AmountCents: invoice.ToCents(inv.Amount),
		Status:      inv.Status,
		Date:        s.now().Format(invoice.DateLayout),
	}

	created, err := s.store.Insert(ctx, rec)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to insert invoice",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return ports.MutationResult{Message: msgCreateDBError, Err: err}
	}

	s.refreshViews(ctx, "Create", created.ID, ListingPath, DashboardPath)

	return ports.MutationResult{NavigateTo: ListingPath}
}

// Update validates the draft and rewrites customerId/amount/status of the
// identified record in one atomic statement. Id and date are never touched.
// An id matching no record is a distinct not-found failure rather than a
// silent no-op.
func (s *InvoiceService) Update(ctx context.Context, id string, draft invoice.Draft) ports.MutationResult {
	s.logger.InfoContext(ctx, "updating invoice", slog.String("invoice_id", id))

	inv, verr := s.schema.ParseSafe(draft)
	if verr != nil {
		return ports.MutationResult{Errors: verr.Fields, Message: msgUpdateMissingFields}
	}

	if err := s.store.Update(ctx, id, *inv); err != nil {
		s.logger.ErrorContext(ctx, "failed to update invoice",
			slog.String("operation", "Update"),
			slog.String("invoice_id", id),
			slog.Any("error", err),
		)
		if errors.Is(err, domain.ErrNotFound) {
			return ports.MutationResult{Message: msgUpdateNotFound, Err: err}
		}
		return ports.MutationResult{Message: msgUpdateDBError, Err: err}
	}

	s.refreshViews(ctx, "Update", id, ListingPath, DashboardPath)

	return ports.MutationResult{NavigateTo: ListingPath}
}

// Delete removes the identified record and refreshes the listing cache. No
// navigation is signaled: deletion is issued from within the listing view, so
// a refresh suffices. When the delete statement fails ambiguously, the store
// is re-read to verify whether the row is actually gone before a failure is
// declared — a delete that took effect despite a transient response error is
// still a success.
func (s *InvoiceService) Delete(ctx context.Context, id string) ports.MutationResult {
	s.logger.InfoContext(ctx, "deleting invoice", slog.String("invoice_id", id))

	err := s.store.Delete(ctx, id)
	switch {
	case err == nil:
		// Confirmed removal.

	case errors.Is(err, domain.ErrNotFound):
		return ports.MutationResult{Message: msgDeleteNotFound, Err: err}

	default:
		s.logger.ErrorContext(ctx, "failed to delete invoice",
			slog.String("operation", "Delete"),
			slog.String("invoice_id", id),
			slog.Any("error", err),
		)
		if !s.recordGone(ctx, id) {
			return ports.MutationResult{Message: msgDeleteDBError, Err: err}
		}
		s.logger.WarnContext(ctx, "delete reported an error but the record is gone, treating as committed",
			slog.String("operation", "Delete"),
			slog.String("invoice_id", id),
		)
	}

	s.refreshViews(ctx, "Delete", id, ListingPath)

	return ports.MutationResult{Message: msgDeleted}
}

// List returns all stored invoices.
func (s *InvoiceService) List(ctx context.Context) ([]invoice.Record, error) {
	s.logger.InfoContext(ctx, "listing invoices")

	records, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list invoices",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return records, nil
}

// Get returns a single stored invoice by id.
func (s *InvoiceService) Get(ctx context.Context, id string) (*invoice.Record, error) {
	s.logger.InfoContext(ctx, "fetching invoice", slog.String("invoice_id", id))

	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch invoice",
			slog.String("operation", "Get"),
			slog.String("invoice_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return rec, nil
}

// recordGone reports whether the identified row no longer exists. Used by
// Delete to distinguish a failed statement from a succeeded one whose
// response was lost.
func (s *InvoiceService) recordGone(ctx context.Context, id string) bool {
	_, err := s.store.GetByID(ctx, id)
	return errors.Is(err, domain.ErrNotFound)
}

// refreshViews invalidates the given view paths concurrently and waits for
// all of them. The write is already committed at this point: an invalidation
// failure is logged but does not fail the mutation, because a missed
// invalidation only delays the recompute until the cached render expires.
func (s *InvoiceService) refreshViews(ctx context.Context, operation, id string, paths ...string) {
	results := fanout.Run(ctx, invalidationWorkers, paths, func(ctx context.Context, path string) (struct{}, error) {
		return struct{}{}, s.views.Invalidate(ctx, path)
	})

	for i, r := range results {
		if r.Err != nil {
			s.logger.ErrorContext(ctx, "failed to invalidate view",
				slog.String("operation", operation),
				slog.String("invoice_id", id),
				slog.String("path", paths[i]),
				slog.Any("error", r.Err),
			)
		}
	}
}
