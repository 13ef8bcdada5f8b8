package service

import (
	"context"
	"fmt"

	"github.com/mmynk/commonspace/internal/calculator"
	"github.com/mmynk/commonspace/internal/models"
	"github.com/mmynk/commonspace/internal/storage"
	pb "github.com/mmynk/commonspace/pkg/proto"
)

// displayPlaces is the number of decimal places money is rounded to in responses.
const displayPlaces = 2

// HouseholdBalances reads a fresh snapshot of the household's records and computes
// its balances and suggested payments. Members come first in e-mail order, followed
// by former members still referenced by records.
func HouseholdBalances(ctx context.Context, store storage.Store, flatCode string) (*pb.GetBalancesResponse, error) {
	members, err := store.ListMembers(ctx, flatCode)
	if err != nil {
		return nil, err
	}
	expenses, err := store.ListExpensesByHousehold(ctx, flatCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	settlements, err := store.ListSettlementsByHousehold(ctx, flatCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load settlements: %w", err)
	}

	return balancesResponse(members, expenses, settlements), nil
}

func balancesResponse(members []string, expenses []*models.Expense, settlements []*models.Settlement) *pb.GetBalancesResponse {
	forBalance := make([]calculator.ExpenseForBalance, len(expenses))
	for i, e := range expenses {
		forBalance[i] = calculator.ExpenseForBalance{
			Amount:       e.Amount,
			PaidBy:       e.PaidBy,
			SplitBetween: e.SplitBetween,
		}
	}
	payments := make([]calculator.SettlementForBalance, len(settlements))
	for i, s := range settlements {
		payments[i] = calculator.SettlementForBalance{
			FromUser: s.FromUser,
			ToUser:   s.ToUser,
			Amount:   s.Amount,
		}
	}

	sheet := calculator.ComputeBalances(members, forBalance, payments)
	debts := calculator.ComputeDebts(sheet.Balances)

	resp := &pb.GetBalancesResponse{
		Balances: make([]*pb.MemberBalance, 0, len(sheet.Balances)),
		Debts:    make([]*pb.Debt, 0, len(debts)),
		Settled:  calculator.Settled(sheet.Balances),
	}
	for _, m := range members {
		resp.Balances = append(resp.Balances, &pb.MemberBalance{
			Person:     m,
			NetBalance: formatMoney(sheet.Balances[m]),
		})
	}
	for _, id := range sheet.Unknown {
		resp.Balances = append(resp.Balances, &pb.MemberBalance{
			Person:     id,
			NetBalance: formatMoney(sheet.Balances[id]),
			Unknown:    true,
		})
	}
	for _, d := range debts {
		resp.Debts = append(resp.Debts, &pb.Debt{
			From:   d.From,
			To:     d.To,
			Amount: formatMoney(d.Amount),
		})
	}
	return resp
}
