package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/finchbooks/invoice-service/internal/domain/invoice"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validRecord() invoice.Record {
	return invoice.Record{
		ID:          "inv-1",
		CustomerID:  "cust-1",
		AmountCents: 1999,
		Status:      invoice.StatusPending,
		Date:        "2026-08-28",
	}
}

func validDraft() invoice.Draft {
	return invoice.Draft{
		invoice.FieldCustomerID: "cust-1",
		invoice.FieldAmount:     "19.99",
		invoice.FieldStatus:     "pending",
	}
}

// formRequest builds a form-encoded request for the given draft fields.
func formRequest(method, target string, draft invoice.Draft) *http.Request {
	form := url.Values{}
	for k, v := range draft {
		form.Set(k, v)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
