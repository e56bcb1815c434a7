package invoice

import "math"

// ToCents converts a dollar amount to integer minor units. Rounding to the
// nearest cent makes the conversion exact for any input representable to two
// decimal places (19.99 -> 1999, not 1998).
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts integer minor units back to a dollar amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
