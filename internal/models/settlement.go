package models

import "github.com/shopspring/decimal"

// Settlement represents a payment between household members to clear debts.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// FlatCode is the household this settlement belongs to.
	FlatCode string

	// FromUser is the e-mail of the member who paid (debtor settling up).
	FromUser string

	// ToUser is the e-mail of the member who received payment (creditor being paid).
	ToUser string

	// Amount is the payment amount.
	Amount decimal.Decimal

	// Date is the Unix timestamp of the payment (display ordering only).
	Date int64

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64

	// CreatedBy is the user ID who recorded this settlement.
	CreatedBy string

	// Note is an optional description for the settlement.
	Note string
}
