package invoice

// Status represents the payment state of an invoice.
type Status string

// Valid invoice statuses. These are the only values the schema accepts and
// the only values the persistence layer stores.
const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// IsValid reports whether the status is one of the defined values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid:
		return true
	default:
		return false
	}
}

// String returns the status as a string.
func (s Status) String() string {
	return string(s)
}
