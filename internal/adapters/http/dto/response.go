// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/finchbooks/invoice-service/internal/domain/invoice"
	"github.com/finchbooks/invoice-service/internal/ports"
)

// InvoiceResponse represents a single stored invoice in HTTP responses.
// Amount is carried in integer cents; rendering layers format currency.
type InvoiceResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customerId"`
	AmountCents int64  `json:"amountCents"`
	Status      string `json:"status"`
	Date        string `json:"date"`
}

// InvoiceListResponse represents a list of invoices in HTTP responses.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Count    int               `json:"count"`
}

// MutationResponse represents the outcome of a create, update, or delete.
// Errors is present only when the input was rejected by validation.
type MutationResponse struct {
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// ToInvoiceResponse converts a stored invoice record to an HTTP response DTO.
func ToInvoiceResponse(rec *invoice.Record) InvoiceResponse {
	return InvoiceResponse{
		ID:          rec.ID,
		CustomerID:  rec.CustomerID,
		AmountCents: rec.AmountCents,
		Status:      rec.Status.String(),
		Date:        rec.Date,
	}
}

// ToInvoiceListResponse converts a slice of stored invoice records to an HTTP
// list response DTO.
func ToInvoiceListResponse(records []invoice.Record) InvoiceListResponse {
	items := make([]InvoiceResponse, len(records))
	for i := range records {
		items[i] = ToInvoiceResponse(&records[i])
	}
	return InvoiceListResponse{
		Invoices: items,
		Count:    len(items),
	}
}

// ToMutationResponse converts a mutation result to an HTTP response DTO.
func ToMutationResponse(res ports.MutationResult) MutationResponse {
	return MutationResponse{
		Message: res.Message,
		Errors:  res.Errors,
	}
}
