package invoice

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/finchbooks/invoice-service/internal/domain"
)

// maxAmount is the largest dollar amount whose cents representation fits in
// int64. ParseFloat accepts "NaN", "Inf", and arbitrarily large exponents, so
// the amount rule must bound the value as well as check its sign.
const maxAmount = math.MaxInt64 / 100

// Messages surfaced to the end user for each failing field rule.
const (
	msgSelectCustomer = "Please select a customer."
	msgAmountPositive = "Please enter an amount greater than $0"
	msgSelectStatus   = "Please select an invoice status"
	msgRequired       = "is required"
)

// Schema is a pure, stateless description of the invoice form contract: which
// fields exist and what each one must satisfy. It is a value — construct it
// once at process start and pass it by reference to each operation; no
// mutable global state is involved.
//
// FullSchema describes every field including the generated ones (id, date).
// Create and Update consume the named FormSchema variant, which omits id and
// date because those are never user-supplied.
type Schema struct {
	omitted map[string]bool
}

// FullSchema returns the schema covering all invoice fields.
func FullSchema() Schema {
	return Schema{}
}

// FormSchema returns the schema variant for caller-submitted forms: the full
// field rules with id and date omitted. The omission is a variant of the one
// schema, not a second definition, so the field rules cannot diverge.
func FormSchema() Schema {
	return FullSchema().Omit(FieldID, FieldDate)
}

// Omit returns a copy of the schema that skips validation of the named
// fields. The receiver is not modified.
func (s Schema) Omit(fields ...string) Schema {
	omitted := make(map[string]bool, len(s.omitted)+len(fields))
	for f := range s.omitted {
		omitted[f] = true
	}
	for _, f := range fields {
		omitted[f] = true
	}
	return Schema{omitted: omitted}
}

// ParseSafe validates a draft and either returns the typed invoice or a
// ValidationError aggregating every failing field's messages in one pass.
// It never panics and is the entry point for untrusted external input.
func (s Schema) ParseSafe(d Draft) (*Invoice, *domain.ValidationError) {
	verr := &domain.ValidationError{}

	if !s.omitted[FieldID] && strings.TrimSpace(d[FieldID]) == "" {
		verr.Add(FieldID, msgRequired)
	}
	if !s.omitted[FieldDate] && strings.TrimSpace(d[FieldDate]) == "" {
		verr.Add(FieldDate, msgRequired)
	}

	customerID := strings.TrimSpace(d[FieldCustomerID])
	if !s.omitted[FieldCustomerID] && customerID == "" {
		verr.Add(FieldCustomerID, msgSelectCustomer)
	}

	var amount float64
	if !s.omitted[FieldAmount] {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(d[FieldAmount]), 64)
		if err != nil || math.IsNaN(parsed) || parsed <= 0 || parsed > maxAmount {
			verr.Add(FieldAmount, msgAmountPositive)
		} else {
			amount = parsed
		}
	}

	status := Status(d[FieldStatus])
	if !s.omitted[FieldStatus] && !status.IsValid() {
		verr.Add(FieldStatus, msgSelectStatus)
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}

	return &Invoice{
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
	}, nil
}

// ParseStrict validates a draft and fails with a single wrapped error
// (unwrapping to domain.ErrValidation) if any field is missing or malformed.
// Use it when the caller is trusted to have supplied well-formed data and a
// failure indicates a programming error rather than bad user input.
func (s Schema) ParseStrict(d Draft) (*Invoice, error) {
	inv, verr := s.ParseSafe(d)
	if verr != nil {
		return nil, fmt.Errorf("invoice schema: %w", verr)
	}
	return inv, nil
}
