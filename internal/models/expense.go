package models

import "github.com/shopspring/decimal"

// Expense represents a shared purchase paid by one member and split equally
// among the members in SplitBetween.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// FlatCode is the household this expense belongs to.
	FlatCode string

	// Description is the free-text label (e.g., "Groceries", "Internet").
	Description string

	// Amount is the positive amount paid, in the household's single currency.
	Amount decimal.Decimal

	// PaidBy is the e-mail of the member who paid the full amount.
	PaidBy string

	// SplitBetween is the list of member e-mails sharing the cost equally.
	// It may or may not include PaidBy.
	SplitBetween []string

	// Date is the Unix timestamp of when the expense occurred (display ordering only).
	Date int64

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64

	// CreatedBy is the user ID who recorded this expense.
	CreatedBy string
}
