package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finchbooks/invoice-service/internal/adapters/http/dto"
	"github.com/finchbooks/invoice-service/internal/ports"
)

// InvoiceHandler handles HTTP requests for invoice reads and mutations.
//
// Mutation outcomes map onto HTTP like the form flow they serve: a committed
// create or update answers 303 See Other with the refreshed listing in the
// Location header, a rejected draft answers 422 with the aggregated field
// errors, and a failed write answers per the error taxonomy.
type InvoiceHandler struct {
	service ports.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler with the given service port.
func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// ListInvoices handles GET /api/v1/invoices.
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToInvoiceListResponse(records))
}

// GetInvoice handles GET /api/v1/invoices/{id}.
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToInvoiceResponse(rec))
}

// CreateInvoice handles POST /api/v1/invoices.
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	limitBody(w, r)

	draft, err := dto.DraftFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.MutationResponse{Message: err.Error()})
		return
	}

	h.writeMutationResult(w, r, h.service.Create(r.Context(), draft))
}

// UpdateInvoice handles POST /api/v1/invoices/{id}.
func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	limitBody(w, r)

	draft, err := dto.DraftFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.MutationResponse{Message: err.Error()})
		return
	}

	h.writeMutationResult(w, r, h.service.Update(r.Context(), chi.URLParam(r, "id"), draft))
}

// DeleteInvoice handles DELETE /api/v1/invoices/{id}.
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	h.writeMutationResult(w, r, h.service.Delete(r.Context(), chi.URLParam(r, "id")))
}

// writeMutationResult translates a mutation result into an HTTP response.
func (h *InvoiceHandler) writeMutationResult(w http.ResponseWriter, r *http.Request, res ports.MutationResult) {
	switch {
	case res.Rejected():
		writeJSON(w, http.StatusUnprocessableEntity, dto.ToMutationResponse(res))

	case res.Err != nil:
		dto.WriteMutationFailure(w, r, res.Err, res.Message)

	case res.NavigateTo != "":
		w.Header().Set("Location", res.NavigateTo)
		writeJSON(w, http.StatusSeeOther, dto.ToMutationResponse(res))

	default:
		writeJSON(w, http.StatusOK, dto.ToMutationResponse(res))
	}
}
