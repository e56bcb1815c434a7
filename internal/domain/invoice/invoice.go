// Package invoice contains the invoice entity, its raw-input draft form, and
// the validation schema that turns one into the other.
package invoice

// Field names as they appear in caller-supplied form data. The HTTP adapter
// reads the form through these same constants, so transport keys cannot
// silently drift from the fields the schema expects.
const (
	FieldID         = "id"
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
	FieldDate       = "date"
)

// DateLayout is the wire and storage format for invoice dates.
const DateLayout = "2006-01-02"

// Draft is raw, unvalidated caller input: a mapping from field name to the
// raw string value taken from the submitted form. Missing fields are simply
// absent keys. A Draft is ephemeral; it exists only for the duration of one
// mutation call.
type Draft map[string]string

// Invoice is a validated invoice. Instances are only ever constructed by a
// successful Schema parse — never hand-built — so Amount > 0 and a valid
// Status hold for every value that reaches persistence.
type Invoice struct {
	CustomerID string
	Amount     float64
	Status     Status
}

// Record is a persisted invoice row. ID is assigned by the store at creation
// and never reassigned; Date is assigned once at creation and not mutated by
// updates. Amounts are stored as integer minor units (cents), never floating
// decimal.
type Record struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      Status
	Date        string
}
