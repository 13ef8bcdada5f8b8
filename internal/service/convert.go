package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/commonspace/internal/calculator"
	"github.com/mmynk/commonspace/internal/models"
	pb "github.com/mmynk/commonspace/pkg/proto"
)

// parseAmount reads a decimal money string from a request.
func parseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, &calculator.ValidationError{Field: field, Value: value, Err: calculator.ErrMalformedAmount}
	}
	return amount, nil
}

// formatMoney renders a computed amount rounded for display.
func formatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(displayPlaces)
}

func toProtoUser(user *models.User) *pb.User {
	return &pb.User{
		Id:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		FlatCode:    user.FlatCode,
		CreatedAt:   timestamppb.New(time.Unix(user.CreatedAt, 0)),
	}
}

func toProtoHousehold(household *models.Household) *pb.Household {
	return &pb.Household{
		FlatCode:  household.Code,
		Name:      household.Name,
		Members:   household.Members,
		CreatedAt: household.CreatedAt,
	}
}

func toProtoExpense(expense *models.Expense) *pb.Expense {
	return &pb.Expense{
		Id:           expense.ID,
		Description:  expense.Description,
		Amount:       expense.Amount.String(),
		PaidBy:       expense.PaidBy,
		SplitBetween: expense.SplitBetween,
		Date:         expense.Date,
		CreatedAt:    expense.CreatedAt,
		CreatedBy:    expense.CreatedBy,
	}
}

func toProtoSettlement(settlement *models.Settlement) *pb.Settlement {
	return &pb.Settlement{
		Id:        settlement.ID,
		FromUser:  settlement.FromUser,
		ToUser:    settlement.ToUser,
		Amount:    settlement.Amount.String(),
		Date:      settlement.Date,
		Note:      settlement.Note,
		CreatedAt: settlement.CreatedAt,
		CreatedBy: settlement.CreatedBy,
	}
}
