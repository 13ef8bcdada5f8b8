package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateExpense(t *testing.T) {
	members := []string{"a@flat.se", "b@flat.se", "c@flat.se"}

	tests := []struct {
		name      string
		expense   ExpenseForBalance
		wantErr   error
		wantField string
	}{
		{
			name:    "valid expense",
			expense: ExpenseForBalance{Amount: d("90"), PaidBy: "a@flat.se", SplitBetween: []string{"a@flat.se", "b@flat.se"}},
		},
		{
			name:      "zero amount",
			expense:   ExpenseForBalance{Amount: d("0"), PaidBy: "a@flat.se", SplitBetween: []string{"b@flat.se"}},
			wantErr:   ErrInvalidAmount,
			wantField: "amount",
		},
		{
			name:      "negative amount",
			expense:   ExpenseForBalance{Amount: d("-5"), PaidBy: "a@flat.se", SplitBetween: []string{"b@flat.se"}},
			wantErr:   ErrInvalidAmount,
			wantField: "amount",
		},
		{
			name:      "amount over the limit",
			expense:   ExpenseForBalance{Amount: d("1000000"), PaidBy: "a@flat.se", SplitBetween: []string{"b@flat.se"}},
			wantErr:   ErrAmountTooLarge,
			wantField: "amount",
		},
		{
			name:      "missing payer",
			expense:   ExpenseForBalance{Amount: d("10"), SplitBetween: []string{"b@flat.se"}},
			wantErr:   ErrMissingPayer,
			wantField: "paid_by",
		},
		{
			name:      "empty split",
			expense:   ExpenseForBalance{Amount: d("10"), PaidBy: "a@flat.se"},
			wantErr:   ErrEmptySplit,
			wantField: "split_between",
		},
		{
			name:      "payer outside household",
			expense:   ExpenseForBalance{Amount: d("10"), PaidBy: "x@elsewhere.se", SplitBetween: []string{"b@flat.se"}},
			wantErr:   ErrUnknownParticipant,
			wantField: "paid_by",
		},
		{
			name:      "split participant outside household",
			expense:   ExpenseForBalance{Amount: d("10"), PaidBy: "a@flat.se", SplitBetween: []string{"b@flat.se", "x@elsewhere.se"}},
			wantErr:   ErrUnknownParticipant,
			wantField: "split_between",
		},
		{
			name:      "duplicate participant",
			expense:   ExpenseForBalance{Amount: d("10"), PaidBy: "a@flat.se", SplitBetween: []string{"b@flat.se", "b@flat.se"}},
			wantErr:   ErrDuplicateParticipant,
			wantField: "split_between",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpense(members, tt.expense)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			var verr *ValidationError
			if assert.True(t, errors.As(err, &verr)) {
				assert.Equal(t, tt.wantField, verr.Field)
			}
		})
	}
}

func TestValidateSettlement(t *testing.T) {
	members := []string{"a@flat.se", "b@flat.se"}

	tests := []struct {
		name       string
		settlement SettlementForBalance
		wantErr    error
	}{
		{
			name:       "valid settlement",
			settlement: SettlementForBalance{FromUser: "b@flat.se", ToUser: "a@flat.se", Amount: d("30")},
		},
		{
			name:       "paying yourself",
			settlement: SettlementForBalance{FromUser: "a@flat.se", ToUser: "a@flat.se", Amount: d("30")},
			wantErr:    ErrSelfSettlement,
		},
		{
			name:       "zero amount",
			settlement: SettlementForBalance{FromUser: "b@flat.se", ToUser: "a@flat.se", Amount: d("0")},
			wantErr:    ErrInvalidAmount,
		},
		{
			name:       "unknown receiver",
			settlement: SettlementForBalance{FromUser: "b@flat.se", ToUser: "z@flat.se", Amount: d("1")},
			wantErr:    ErrUnknownParticipant,
		},
		{
			name:       "unknown sender",
			settlement: SettlementForBalance{FromUser: "z@flat.se", ToUser: "a@flat.se", Amount: d("1")},
			wantErr:    ErrUnknownParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSettlement(members, tt.settlement)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "paid_by", Value: "x@y.se", Err: ErrUnknownParticipant}
	assert.Equal(t, `paid_by "x@y.se": unknown participant`, err.Error())

	err = &ValidationError{Field: "split_between", Err: ErrEmptySplit}
	assert.Equal(t, "split_between: split must include at least one person", err.Error())
}
