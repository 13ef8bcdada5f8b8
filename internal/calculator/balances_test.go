package calculator

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, who ...string) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "%v: want %s, got %s", who, want, got)
}

func TestComputeBalances(t *testing.T) {
	members := []string{"A", "B", "C"}
	dinner := ExpenseForBalance{Amount: d("90"), PaidBy: "A", SplitBetween: []string{"A", "B", "C"}}

	t.Run("no records leaves every member at zero", func(t *testing.T) {
		sheet := ComputeBalances(members, nil, nil)

		require.Len(t, sheet.Balances, 3)
		for _, m := range members {
			assertDecimal(t, "0", sheet.Balances[m], m)
		}
		assert.Empty(t, sheet.Unknown)
		assert.Empty(t, ComputeDebts(sheet.Balances))
		assert.True(t, Settled(sheet.Balances))
	})

	t.Run("payer is owed the other shares", func(t *testing.T) {
		sheet := ComputeBalances(members, []ExpenseForBalance{dinner}, nil)

		assertDecimal(t, "60", sheet.Balances["A"])
		assertDecimal(t, "-30", sheet.Balances["B"])
		assertDecimal(t, "-30", sheet.Balances["C"])
	})

	t.Run("settlement offsets the debt", func(t *testing.T) {
		sheet := ComputeBalances(members,
			[]ExpenseForBalance{dinner},
			[]SettlementForBalance{{FromUser: "B", ToUser: "A", Amount: d("30")}},
		)

		assertDecimal(t, "30", sheet.Balances["A"])
		assertDecimal(t, "0", sheet.Balances["B"])
		assertDecimal(t, "-30", sheet.Balances["C"])
	})

	t.Run("self-paid self-split expense changes nothing", func(t *testing.T) {
		sheet := ComputeBalances(members,
			[]ExpenseForBalance{{Amount: d("42.10"), PaidBy: "B", SplitBetween: []string{"B"}}},
			nil,
		)

		for _, m := range members {
			assertDecimal(t, "0", sheet.Balances[m], m)
		}
	})

	t.Run("payer outside the split is owed the full amount", func(t *testing.T) {
		sheet := ComputeBalances(members,
			[]ExpenseForBalance{{Amount: d("40"), PaidBy: "C", SplitBetween: []string{"A", "B"}}},
			nil,
		)

		assertDecimal(t, "-20", sheet.Balances["A"])
		assertDecimal(t, "-20", sheet.Balances["B"])
		assertDecimal(t, "40", sheet.Balances["C"])
	})

	t.Run("unknown identifiers get their own entry", func(t *testing.T) {
		sheet := ComputeBalances(members,
			[]ExpenseForBalance{{Amount: d("20"), PaidBy: "A", SplitBetween: []string{"A", "Zed"}}},
			[]SettlementForBalance{{FromUser: "Ghost", ToUser: "B", Amount: d("5")}},
		)

		assert.Equal(t, []string{"Ghost", "Zed"}, sheet.Unknown)
		assertDecimal(t, "-10", sheet.Balances["Zed"])
		assertDecimal(t, "5", sheet.Balances["Ghost"])
		assertDecimal(t, "10", sheet.Balances["A"])
		assertDecimal(t, "-5", sheet.Balances["B"])
		assertDecimal(t, "0", sheet.Balances.Total())
	})

	t.Run("empty split is ignored", func(t *testing.T) {
		sheet := ComputeBalances(members,
			[]ExpenseForBalance{{Amount: d("20"), PaidBy: "A"}},
			nil,
		)
		assertDecimal(t, "0", sheet.Balances["A"])
	})

	t.Run("is idempotent", func(t *testing.T) {
		expenses := []ExpenseForBalance{dinner, {Amount: d("10"), PaidBy: "B", SplitBetween: []string{"A", "C"}}}
		first := ComputeBalances(members, expenses, nil)
		second := ComputeBalances(members, expenses, nil)

		require.Len(t, second.Balances, len(first.Balances))
		for id, v := range first.Balances {
			assert.True(t, v.Equal(second.Balances[id]), id)
		}
	})
}

func TestComputeDebts(t *testing.T) {
	tests := []struct {
		name     string
		balances Balances
		want     []DebtEdge
	}{
		{
			name:     "one creditor two debtors",
			balances: Balances{"A": d("60"), "B": d("-30"), "C": d("-30")},
			want: []DebtEdge{
				{From: "B", To: "A", Amount: d("30")},
				{From: "C", To: "A", Amount: d("30")},
			},
		},
		{
			name:     "after a partial settlement",
			balances: Balances{"A": d("30"), "B": d("0"), "C": d("-30")},
			want: []DebtEdge{
				{From: "C", To: "A", Amount: d("30")},
			},
		},
		{
			name:     "largest debtor pays largest creditor first",
			balances: Balances{"A": d("10"), "B": d("50"), "C": d("-45"), "D": d("-15")},
			want: []DebtEdge{
				{From: "C", To: "B", Amount: d("45")},
				{From: "D", To: "B", Amount: d("5")},
				{From: "D", To: "A", Amount: d("10")},
			},
		},
		{
			name:     "sub-cent residue is treated as settled",
			balances: Balances{"A": d("0.005"), "B": d("-0.005")},
			want:     nil,
		},
		{
			name:     "all zero",
			balances: Balances{"A": d("0"), "B": d("0")},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDebts(tt.balances)

			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].From, got[i].From, "debt %d from", i)
				assert.Equal(t, tt.want[i].To, got[i].To, "debt %d to", i)
				assert.True(t, tt.want[i].Amount.Equal(got[i].Amount), "debt %d amount: want %s, got %s", i, tt.want[i].Amount, got[i].Amount)
			}
		})
	}
}

func TestBalanceProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	people := []string{"ann", "ben", "cat", "dan", "eve"}
	tolerance := decimal.New(1, -9)

	for round := 0; round < 200; round++ {
		members := people[:2+rng.IntN(len(people)-1)]

		var expenses []ExpenseForBalance
		for n := rng.IntN(8); n > 0; n-- {
			var split []string
			for _, m := range members {
				if rng.IntN(2) == 0 {
					split = append(split, m)
				}
			}
			if len(split) == 0 {
				split = []string{members[0]}
			}
			expenses = append(expenses, ExpenseForBalance{
				Amount:       decimal.New(int64(1+rng.IntN(100000)), -2),
				PaidBy:       members[rng.IntN(len(members))],
				SplitBetween: split,
			})
		}

		var settlements []SettlementForBalance
		for n := rng.IntN(3); n > 0; n-- {
			from, to := members[rng.IntN(len(members))], members[rng.IntN(len(members))]
			if from == to {
				continue
			}
			settlements = append(settlements, SettlementForBalance{
				FromUser: from,
				ToUser:   to,
				Amount:   decimal.New(int64(1+rng.IntN(5000)), -2),
			})
		}

		sheet := ComputeBalances(members, expenses, settlements)
		require.Len(t, sheet.Balances, len(members), "round %d", round)
		require.True(t, sheet.Balances.Total().Abs().LessThan(tolerance), "round %d: balances sum to %s", round, sheet.Balances.Total())

		debts := ComputeDebts(sheet.Balances)
		if creditors := countAbove(sheet.Balances); creditors > 0 {
			assert.LessOrEqual(t, len(debts), len(sheet.Balances)-1, "round %d", round)
		}

		received := make(map[string]decimal.Decimal)
		paid := make(map[string]decimal.Decimal)
		for _, debt := range debts {
			require.True(t, debt.Amount.IsPositive(), "round %d: non-positive debt %+v", round, debt)
			received[debt.To] = received[debt.To].Add(debt.Amount)
			paid[debt.From] = paid[debt.From].Add(debt.Amount)
		}

		for id, bal := range sheet.Balances {
			switch {
			case bal.GreaterThan(Tolerance):
				assert.True(t, received[id].Sub(bal).Abs().LessThan(Tolerance), "round %d: %s received %s, balance %s", round, id, received[id], bal)
			case bal.LessThan(Tolerance.Neg()):
				assert.True(t, paid[id].Add(bal).Abs().LessThan(Tolerance), "round %d: %s paid %s, balance %s", round, id, paid[id], bal)
			}
		}
	}
}

func countAbove(b Balances) int {
	n := 0
	for _, v := range b {
		if v.GreaterThan(Tolerance) {
			n++
		}
	}
	return n
}
