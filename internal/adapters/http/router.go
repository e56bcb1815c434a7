// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finchbooks/invoice-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
//
// Invoice updates are POSTs rather than PATCHes: a mutation submits the full
// form draft and the edit form posts directly to the invoice resource.
func NewRouter(
	invoiceHandler *handlers.InvoiceHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/invoices", invoiceHandler.ListInvoices)
		r.Post("/invoices", invoiceHandler.CreateInvoice)
		r.Get("/invoices/{id}", invoiceHandler.GetInvoice)
		r.Post("/invoices/{id}", invoiceHandler.UpdateInvoice)
		r.Delete("/invoices/{id}", invoiceHandler.DeleteInvoice)
	})

	return r
}
