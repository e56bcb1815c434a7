package invoice

import "testing"

func TestToCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "two decimal places", amount: 19.99, want: 1999},
		{name: "whole dollars", amount: 100, want: 10000},
		{name: "single cent", amount: 0.01, want: 1},
		{name: "binary-inexact value rounds up", amount: 15.50, want: 1550},
		{name: "rounds half away from zero", amount: 0.005, want: 1},
		{name: "truncates sub-half fractions", amount: 0.004, want: 0},
		{name: "zero", amount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ToCents(tt.amount); got != tt.want {
				t.Errorf("ToCents(%v) = %d, want %d", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFromCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cents int64
		want  float64
	}{
		{name: "two decimal places", cents: 1999, want: 19.99},
		{name: "whole dollars", cents: 10000, want: 100},
		{name: "single cent", cents: 1, want: 0.01},
		{name: "zero", cents: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FromCents(tt.cents); got != tt.want {
				t.Errorf("FromCents(%d) = %v, want %v", tt.cents, got, tt.want)
			}
		})
	}
}

func TestToCentsFromCentsRoundTrip(t *testing.T) {
	t.Parallel()

	for _, amount := range []float64{19.99, 0.01, 15.50, 1234.56} {
		if got := FromCents(ToCents(amount)); got != amount {
			t.Errorf("FromCents(ToCents(%v)) = %v, want %v", amount, got, amount)
		}
	}
}
