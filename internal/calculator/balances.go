package calculator

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Tolerance is the magnitude below which a balance is treated as settled.
// Suggested debts never carry amounts under this value.
var Tolerance = decimal.New(1, -2)

// ExpenseForBalance represents an expense with the minimal information needed for balance calculations.
type ExpenseForBalance struct {
	Amount       decimal.Decimal
	PaidBy       string
	SplitBetween []string
}

// SettlementForBalance represents a settlement with the minimal information needed for balance calculations.
type SettlementForBalance struct {
	FromUser string // Who paid (debtor settling up)
	ToUser   string // Who received (creditor being paid)
	Amount   decimal.Decimal
}

// Balances maps a person identifier to their net balance.
// Positive = the group owes this person, negative = this person owes the group.
type Balances map[string]decimal.Decimal

// Total returns the sum of all balances. It is zero for any sheet produced by ComputeBalances.
func (b Balances) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range b {
		total = total.Add(v)
	}
	return total
}

// BalanceSheet is the result of ComputeBalances.
type BalanceSheet struct {
	Balances Balances

	// Unknown lists, sorted, identifiers referenced by expenses or settlements
	// that are not household members. They still carry a balance entry.
	Unknown []string
}

// DebtEdge represents a suggested payment from one person to another.
type DebtEdge struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount decimal.Decimal
}

// ComputeBalances nets expenses and settlements into per-person balances.
//
// Algorithm:
//   - Every member starts at zero
//   - For each expense: each split participant other than the payer owes amount/len(split),
//     which is credited to the payer
//   - For each settlement: sender's balance improves, receiver's balance decreases
//
// Identifiers outside members are admitted and reported in BalanceSheet.Unknown.
// Expenses with an empty split contribute nothing.
func ComputeBalances(members []string, expenses []ExpenseForBalance, settlements []SettlementForBalance) BalanceSheet {
	balances := make(Balances, len(members))
	known := make(map[string]bool, len(members))
	for _, m := range members {
		balances[m] = decimal.Zero
		known[m] = true
	}

	var unknown []string
	touch := func(id string) {
		if _, ok := balances[id]; ok {
			return
		}
		balances[id] = decimal.Zero
		if !known[id] {
			unknown = append(unknown, id)
		}
	}

	for _, e := range expenses {
		if len(e.SplitBetween) == 0 {
			continue
		}
		share := e.Amount.Div(decimal.NewFromInt(int64(len(e.SplitBetween))))
		for _, person := range e.SplitBetween {
			if person == e.PaidBy {
				continue
			}
			touch(person)
			touch(e.PaidBy)
			balances[person] = balances[person].Sub(share)
			balances[e.PaidBy] = balances[e.PaidBy].Add(share)
		}
	}

	for _, s := range settlements {
		touch(s.FromUser)
		touch(s.ToUser)
		balances[s.FromUser] = balances[s.FromUser].Add(s.Amount)
		balances[s.ToUser] = balances[s.ToUser].Sub(s.Amount)
	}

	slices.Sort(unknown)
	return BalanceSheet{Balances: balances, Unknown: unknown}
}

type party struct {
	id     string
	amount decimal.Decimal
}

// ComputeDebts turns balances into a list of suggested payments using greedy
// creditor/debtor matching: largest creditor against largest debtor until one side
// runs out. Debts are returned in emission order.
//
// The matching is not guaranteed to use the fewest possible transactions when four or
// more parties are unbalanced.
func ComputeDebts(balances Balances) []DebtEdge {
	var creditors, debtors []party
	for id, amount := range balances {
		switch {
		case amount.GreaterThan(Tolerance):
			creditors = append(creditors, party{id: id, amount: amount})
		case amount.LessThan(Tolerance.Neg()):
			debtors = append(debtors, party{id: id, amount: amount})
		}
	}

	// Largest credit first, most negative debt first; identifier breaks ties.
	slices.SortFunc(creditors, func(a, b party) int {
		if c := b.amount.Cmp(a.amount); c != 0 {
			return c
		}
		return strings.Compare(a.id, b.id)
	})
	slices.SortFunc(debtors, func(a, b party) int {
		if c := a.amount.Cmp(b.amount); c != 0 {
			return c
		}
		return strings.Compare(a.id, b.id)
	})

	var debts []DebtEdge
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		amount := decimal.Min(creditors[i].amount, debtors[j].amount.Abs())
		debts = append(debts, DebtEdge{
			From:   debtors[j].id,
			To:     creditors[i].id,
			Amount: amount,
		})

		creditors[i].amount = creditors[i].amount.Sub(amount)
		debtors[j].amount = debtors[j].amount.Add(amount)

		if creditors[i].amount.LessThan(Tolerance) {
			i++
		}
		if debtors[j].amount.Abs().LessThan(Tolerance) {
			j++
		}
	}

	return debts
}

// Settled reports whether no balance exceeds the tolerance in either direction.
func Settled(balances Balances) bool {
	for _, v := range balances {
		if v.Abs().GreaterThan(Tolerance) {
			return false
		}
	}
	return true
}
