package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount accepted for a single expense or settlement.
var MaxAmount = decimal.NewFromInt(999999)

var (
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrMalformedAmount      = errors.New("amount is not a decimal number")
	ErrAmountTooLarge       = errors.New("amount exceeds the maximum of 999999")
	ErrMissingPayer         = errors.New("payer is required")
	ErrEmptySplit           = errors.New("split must include at least one person")
	ErrDuplicateParticipant = errors.New("person listed more than once in split")
	ErrUnknownParticipant   = errors.New("unknown participant")
	ErrSelfSettlement       = errors.New("settlement sender and receiver must differ")
)

// ValidationError reports which field of an expense or settlement was rejected.
// Err is one of the Err* kinds above and can be matched with errors.Is.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &ValidationError{Field: "amount", Value: amount.String(), Err: ErrInvalidAmount}
	}
	if amount.GreaterThan(MaxAmount) {
		return &ValidationError{Field: "amount", Value: amount.String(), Err: ErrAmountTooLarge}
	}
	return nil
}

func memberSet(members []string) map[string]bool {
	set := make(map[string]bool, len(members))
	for _, m := range members {
		set[m] = true
	}
	return set
}

// ValidateExpense checks an expense against the household members before it is stored.
func ValidateExpense(members []string, e ExpenseForBalance) error {
	if err := validateAmount(e.Amount); err != nil {
		return err
	}
	if e.PaidBy == "" {
		return &ValidationError{Field: "paid_by", Err: ErrMissingPayer}
	}
	if len(e.SplitBetween) == 0 {
		return &ValidationError{Field: "split_between", Err: ErrEmptySplit}
	}

	known := memberSet(members)
	if !known[e.PaidBy] {
		return &ValidationError{Field: "paid_by", Value: e.PaidBy, Err: ErrUnknownParticipant}
	}
	seen := make(map[string]bool, len(e.SplitBetween))
	for _, p := range e.SplitBetween {
		if seen[p] {
			return &ValidationError{Field: "split_between", Value: p, Err: ErrDuplicateParticipant}
		}
		seen[p] = true
		if !known[p] {
			return &ValidationError{Field: "split_between", Value: p, Err: ErrUnknownParticipant}
		}
	}
	return nil
}

// ValidateSettlement checks a settlement against the household members before it is stored.
func ValidateSettlement(members []string, s SettlementForBalance) error {
	if err := validateAmount(s.Amount); err != nil {
		return err
	}
	if s.FromUser == s.ToUser {
		return &ValidationError{Field: "to_user", Value: s.ToUser, Err: ErrSelfSettlement}
	}

	known := memberSet(members)
	if !known[s.FromUser] {
		return &ValidationError{Field: "from_user", Value: s.FromUser, Err: ErrUnknownParticipant}
	}
	if !known[s.ToUser] {
		return &ValidationError{Field: "to_user", Value: s.ToUser, Err: ErrUnknownParticipant}
	}
	return nil
}
