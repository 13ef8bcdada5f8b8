package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSplitEqually(t *testing.T) {
	tests := []struct {
		name         string
		amount       decimal.Decimal
		participants []string
		wantErr      error
		validateFunc func(t *testing.T, shares map[string]decimal.Decimal)
	}{
		{
			name:         "three-way split",
			amount:       decimal.NewFromInt(90),
			participants: []string{"Alice", "Bob", "Charlie"},
			validateFunc: func(t *testing.T, shares map[string]decimal.Decimal) {
				for _, person := range []string{"Alice", "Bob", "Charlie"} {
					if !shares[person].Equal(decimal.NewFromInt(30)) {
						t.Errorf("%s share = %v, want 30", person, shares[person])
					}
				}
			},
		},
		{
			name:         "single person takes the whole amount",
			amount:       decimal.RequireFromString("12.50"),
			participants: []string{"Alice"},
			validateFunc: func(t *testing.T, shares map[string]decimal.Decimal) {
				if !shares["Alice"].Equal(decimal.RequireFromString("12.5")) {
					t.Errorf("Alice share = %v, want 12.5", shares["Alice"])
				}
			},
		},
		{
			name:         "uneven split stays within a cent of the total",
			amount:       decimal.NewFromInt(100),
			participants: []string{"Alice", "Bob", "Charlie"},
			validateFunc: func(t *testing.T, shares map[string]decimal.Decimal) {
				total := decimal.Zero
				for _, s := range shares {
					total = total.Add(s)
				}
				if total.Sub(decimal.NewFromInt(100)).Abs().GreaterThan(Tolerance) {
					t.Errorf("shares sum to %v, want ~100", total)
				}
			},
		},
		{
			name:         "no participants should error",
			amount:       decimal.NewFromInt(10),
			participants: []string{},
			wantErr:      ErrEmptySplit,
		},
		{
			name:         "zero amount should error",
			amount:       decimal.Zero,
			participants: []string{"Alice"},
			wantErr:      ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := SplitEqually(tt.amount, tt.participants)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SplitEqually() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && tt.validateFunc != nil {
				tt.validateFunc(t, shares)
			}
		})
	}
}
