package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/commonspace/internal/calculator"
	"github.com/mmynk/commonspace/internal/metrics"
	"github.com/mmynk/commonspace/internal/models"
	"github.com/mmynk/commonspace/internal/storage"
	"github.com/mmynk/commonspace/internal/validation"
	pb "github.com/mmynk/commonspace/pkg/proto"
	"github.com/mmynk/commonspace/pkg/proto/protoconnect"
)

var _ protoconnect.ExpenseServiceHandler = (*ExpenseService)(nil)

// ExpenseService implements the Connect ExpenseService. Every procedure is scoped
// to the caller's household; records of other households are reported as not found.
type ExpenseService struct {
	protoconnect.UnimplementedExpenseServiceHandler
	store   storage.Store
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewExpenseService creates a new ExpenseService. m may be nil.
func NewExpenseService(store storage.Store, m *metrics.Metrics, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{store: store, metrics: m, logger: logger}
}

func normalizeEmails(emails []string) []string {
	out := make([]string, len(emails))
	for i, e := range emails {
		out[i] = validation.NormalizeEmail(e)
	}
	return out
}

// expenseFields validates the editable part of an expense against the household members.
func expenseFields(members []string, description, amount, paidBy string, split []string) (*models.Expense, error) {
	desc, err := validation.RequireText(description, validation.MaxExpenseDescription)
	if err != nil {
		return nil, &calculator.ValidationError{Field: "description", Err: err}
	}
	total, err := parseAmount("amount", amount)
	if err != nil {
		return nil, err
	}

	e := calculator.ExpenseForBalance{
		Amount:       total,
		PaidBy:       validation.NormalizeEmail(paidBy),
		SplitBetween: normalizeEmails(split),
	}
	if err := calculator.ValidateExpense(members, e); err != nil {
		return nil, err
	}

	return &models.Expense{
		Description:  desc,
		Amount:       e.Amount,
		PaidBy:       e.PaidBy,
		SplitBetween: e.SplitBetween,
	}, nil
}

// CreateExpense records a shared expense in the caller's household.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[pb.CreateExpenseRequest]) (*connect.Response[pb.ExpenseResponse], error) {
	user, members, err := householdScope(ctx, s.store)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CreateExpense request received",
		"flat_code", user.FlatCode,
		"amount", req.Msg.Amount,
		"participants_count", len(req.Msg.SplitBetween),
	)

	expense, err := expenseFields(members, req.Msg.Description, req.Msg.Amount, req.Msg.PaidBy, req.Msg.SplitBetween)
	if err != nil {
		s.logger.Warn("CreateExpense rejected", "error", err)
		return nil, toConnectError(err)
	}
	expense.FlatCode = user.FlatCode
	expense.Date = req.Msg.Date
	expense.CreatedBy = user.ID

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		s.logger.Error("CreateExpense failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Expense created", "expense_id", expense.ID, "flat_code", expense.FlatCode)
	return connect.NewResponse(&pb.ExpenseResponse{Expense: toProtoExpense(expense)}), nil
}

// expenseInHousehold fetches an expense and hides it when it belongs to another household.
func (s *ExpenseService) expenseInHousehold(ctx context.Context, flatCode, expenseID string) (*models.Expense, error) {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if expense.FlatCode != flatCode {
		return nil, notInHousehold("expense", expenseID)
	}
	return expense, nil
}

// UpdateExpense replaces an expense's description, amount, payer and split.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[pb.UpdateExpenseRequest]) (*connect.Response[pb.ExpenseResponse], error) {
	user, members, err := householdScope(ctx, s.store)
	if err != nil {
		return nil, err
	}
	s.logger.Info("UpdateExpense request received", "expense_id", req.Msg.ExpenseId)

	existing, err := s.expenseInHousehold(ctx, user.FlatCode, req.Msg.ExpenseId)
	if err != nil {
		logFailure(s.logger, "UpdateExpense failed", err, "expense_id", req.Msg.ExpenseId)
		return nil, err
	}

	updated, err := expenseFields(members, req.Msg.Description, req.Msg.Amount, req.Msg.PaidBy, req.Msg.SplitBetween)
	if err != nil {
		s.logger.Warn("UpdateExpense rejected", "expense_id", existing.ID, "error", err)
		return nil, toConnectError(err)
	}
	existing.Description = updated.Description
	existing.Amount = updated.Amount
	existing.PaidBy = updated.PaidBy
	existing.SplitBetween = updated.SplitBetween
	if req.Msg.Date != 0 {
		existing.Date = req.Msg.Date
	}

	if err := s.store.UpdateExpense(ctx, existing); err != nil {
		s.logger.Error("UpdateExpense failed", "expense_id", existing.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Expense updated", "expense_id", existing.ID)
	return connect.NewResponse(&pb.ExpenseResponse{Expense: toProtoExpense(existing)}), nil
}

// DeleteExpense removes an expense from the caller's household.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[pb.DeleteExpenseRequest]) (*connect.Response[emptypb.Empty], error) {
	user, _, err := householdScope(ctx, s.store)
	if err != nil {
		return nil, err
	}
	s.logger.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseId)

	if _, err := s.expenseInHousehold(ctx, user.FlatCode, req.Msg.ExpenseId); err != nil {
		logFailure(s.logger, "DeleteExpense failed", err, "expense_id", req.Msg.ExpenseId)
		return nil, err
	}
	if err := s.store.DeleteExpense(ctx, req.Msg.ExpenseId); err != nil {
		s.logger.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Expense deleted", "expense_id", req.Msg.ExpenseId)
	return connect.NewResponse(&emptypb.Empty{}), nil
}

// ListExpenses returns the household's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.ListExpensesResponse], error) {
	user, _, err := householdScope(ctx, s.store)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByHousehold(ctx, user.FlatCode)
	if err != nil {
		s.logger.Error("ListExpenses failed", "flat_code", user.FlatCode, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &pb.ListExpensesResponse{Expenses: make([]*pb.Expense, len(expenses))}
	for i, e := range expenses {
		resp.Expenses[i] = toProtoExpense(e)
	}

	s.logger.Info("ListExpenses successful", "flat_code", user.FlatCode, "count", len(expenses))
	return connect.NewResponse(resp), nil
}

// PreviewSplit shows how an expense would be divided without storing it.
func (s *ExpenseService) PreviewSplit(ctx context.Context, req *connect.Request[pb.PreviewSplitRequest]) (*connect.Response[pb.PreviewSplitResponse], error) {
	_, members, err := householdScope(ctx, s.store)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount("amount", req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(err)
	}
	e := calculator.ExpenseForBalance{
		Amount:       amount,
		PaidBy:       validation.NormalizeEmail(req.Msg.PaidBy),
		SplitBetween: normalizeEmails(req.Msg.SplitBetween),
	}
	if err := calculator.ValidateExpense(members, e); err != nil {
		return nil, toConnectError(err)
	}

	shares, err := calculator.SplitEqually(e.Amount, e.SplitBetween)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &pb.PreviewSplitResponse{
		Shares:      make([]*pb.Share, 0, len(shares)),
		PayerCredit: formatMoney(e.Amount.Sub(shares[e.PaidBy])),
	}
	for person, share := range shares {
		resp.Shares = append(resp.Shares, &pb.Share{Person: person, Amount: formatMoney(share)})
	}
	slices.SortFunc(resp.Shares, func(a, b *pb.Share) int {
		return strings.Compare(a.Person, b.Person)
	})

	return connect.NewResponse(resp), nil
}

// CreateSettlement records a payment between two household members.
func (s *ExpenseService) CreateSettlement(ctx context.Context, req *connect.Request[pb.CreateSettlementRequest]) (*connect.Response[pb.SettlementResponse], error) {
	user, members, err := householdScope(ctx, s.store)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount("amount", req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(err)
	}
	payment := calculator.SettlementForBalance{
		FromUser: validation.NormalizeEmail(req.Msg.FromUser),
		ToUser:   validation.NormalizeEmail(req.Msg.ToUser),
		Amount:   amount,
	}
	s.logger.Info("CreateSettlement request received",
		"flat_code", user.FlatCode,
		"from_user", payment.FromUser,
		"to_user", payment.ToUser,
		"amount", payment.Amount.String(),
	)

	if err := calculator.ValidateSettlement(members, payment); err != nil {
		s.logger.Warn("CreateSettlement rejected", "error", err)
		return nil, toConnectError(err)
	}

	settlement := &models.Settlement{
		FlatCode:  user.FlatCode,
		FromUser:  payment.FromUser,
		ToUser:    payment.ToUser,
		Amount:    payment.Amount,
		Date:      req.Msg.Date,
		CreatedBy: user.ID,
		Note:      validation.SanitizeText(req.Msg.Note, validation.MaxSettlementNote),
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		s.logger.Error("CreateSettlement failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Settlement created", "settlement_id", settlement.ID)
	return connect.NewResponse(&pb.SettlementResponse{Settlement: toProtoSettlement(settlement)}), nil
}

// DeleteSettlement removes a settlement from the caller's household.
func (s *ExpenseService) DeleteSettlement(ctx context.Context, req *connect.Request[pb.DeleteSettlementRequest]) (*connect.Response[emptypb.Empty], error) {
	user, _, err := householdScope(ctx, s.store)
	if err != nil {
		return nil, err
	}
	s.logger.Info("DeleteSettlement request received", "settlement_id", req.Msg.SettlementId)

	settlement, err := s.store.GetSettlement(ctx, req.Msg.SettlementId)
	if err != nil {
		logFailure(s.logger, "DeleteSettlement failed", toConnectError(err), "settlement_id", req.Msg.SettlementId)
		return nil, toConnectError(err)
	}
	if settlement.FlatCode != user.FlatCode {
		return nil, notInHousehold("settlement", req.Msg.SettlementId)
	}

	if err := s.store.DeleteSettlement(ctx, settlement.ID); err != nil {
		s.logger.Error("DeleteSettlement failed", "settlement_id", settlement.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Settlement deleted", "settlement_id", settlement.ID)
	return connect.NewResponse(&emptypb.Empty{}), nil
}

// ListSettlements returns the household's settlements, newest first.
func (s *ExpenseService) ListSettlements(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.ListSettlementsResponse], error) {
	user, _, err := householdScope(ctx, s.store)
	if err != nil {
		return nil, err
	}

	settlements, err := s.store.ListSettlementsByHousehold(ctx, user.FlatCode)
	if err != nil {
		s.logger.Error("ListSettlements failed", "flat_code", user.FlatCode, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &pb.ListSettlementsResponse{Settlements: make([]*pb.Settlement, len(settlements))}
	for i, st := range settlements {
		resp.Settlements[i] = toProtoSettlement(st)
	}

	s.logger.Info("ListSettlements successful", "flat_code", user.FlatCode, "count", len(settlements))
	return connect.NewResponse(resp), nil
}

// GetBalances computes net balances and suggested payments for the caller's household.
func (s *ExpenseService) GetBalances(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.GetBalancesResponse], error) {
	user, _, err := householdScope(ctx, s.store)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := HouseholdBalances(ctx, s.store, user.FlatCode)
	if err != nil {
		s.logger.Error("GetBalances failed", "flat_code", user.FlatCode, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.metrics.ObserveBalances(time.Since(start), len(resp.Debts))

	s.logger.Info("GetBalances successful",
		"flat_code", user.FlatCode,
		"people", len(resp.Balances),
		"debts", len(resp.Debts),
		"settled", resp.Settled,
	)
	return connect.NewResponse(resp), nil
}
