package dto

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/finchbooks/invoice-service/internal/domain/invoice"
)

// draftFields are the form keys copied into a draft. They are the same
// constants the schema validates against, so the transport cannot submit
// under one name and validate under another.
var draftFields = []string{
	invoice.FieldCustomerID,
	invoice.FieldAmount,
	invoice.FieldStatus,
}

// DraftFromRequest extracts an invoice draft from the request body. Form
// submissions (urlencoded or multipart) and JSON objects of strings are both
// accepted. Absent fields are simply missing keys; the schema decides what
// that means.
func DraftFromRequest(r *http.Request) (invoice.Draft, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil && contentType != "" {
		return nil, fmt.Errorf("parsing content type: %w", err)
	}

	if mediaType == "application/json" {
		return draftFromJSON(r)
	}
	return draftFromForm(r)
}

func draftFromForm(r *http.Request) (invoice.Draft, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parsing form: %w", err)
	}

	draft := make(invoice.Draft, len(draftFields))
	for _, field := range draftFields {
		if r.PostForm.Has(field) {
			draft[field] = r.PostForm.Get(field)
		}
	}
	return draft, nil
}

func draftFromJSON(r *http.Request) (invoice.Draft, error) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding json body: %w", err)
	}

	draft := make(invoice.Draft, len(draftFields))
	for _, field := range draftFields {
		if value, ok := body[field]; ok {
			draft[field] = value
		}
	}
	return draft, nil
}
