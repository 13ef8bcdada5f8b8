package calculator

import (
	"github.com/shopspring/decimal"
)

// SplitEqually computes how much each participant owes for an expense divided equally.
// Every participant gets amount / len(participants); the payer's own share is included
// when the payer is in the split.
func SplitEqually(amount decimal.Decimal, participants []string) (map[string]decimal.Decimal, error) {
	if len(participants) == 0 {
		return nil, &ValidationError{Field: "split_between", Err: ErrEmptySplit}
	}
	if !amount.IsPositive() {
		return nil, &ValidationError{Field: "amount", Value: amount.String(), Err: ErrInvalidAmount}
	}

	share := amount.Div(decimal.NewFromInt(int64(len(participants))))
	shares := make(map[string]decimal.Decimal, len(participants))
	for _, p := range participants {
		shares[p] = shares[p].Add(share)
	}
	return shares, nil
}
