package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/commonspace/internal/models"
	"github.com/mmynk/commonspace/internal/storage"
	"github.com/mmynk/commonspace/internal/validation"
	pb "github.com/mmynk/commonspace/pkg/proto"
	"github.com/mmynk/commonspace/pkg/proto/protoconnect"
)

var _ protoconnect.HouseholdServiceHandler = (*HouseholdService)(nil)

// HouseholdService implements the Connect HouseholdService.
// A user belongs to at most one household at a time.
type HouseholdService struct {
	protoconnect.UnimplementedHouseholdServiceHandler
	store  storage.Store
	logger *slog.Logger
}

// NewHouseholdService creates a new HouseholdService with the given storage backend.
func NewHouseholdService(store storage.Store, logger *slog.Logger) *HouseholdService {
	return &HouseholdService{store: store, logger: logger}
}

// CreateHousehold creates a household with a fresh flat code and makes the caller its first member.
func (s *HouseholdService) CreateHousehold(ctx context.Context, req *connect.Request[pb.CreateHouseholdRequest]) (*connect.Response[pb.HouseholdResponse], error) {
	user, err := currentUser(ctx, s.store)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CreateHousehold request received", "user_id", user.ID, "name", req.Msg.Name)

	if user.FlatCode != "" {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrAlreadyInHousehold)
	}
	name, err := validation.RequireText(req.Msg.Name, validation.MaxHouseholdName)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	household := &models.Household{Name: name}
	if err := s.store.CreateHouseholdWithMember(ctx, household, user.ID); err != nil {
		s.logger.Error("CreateHousehold failed", "user_id", user.ID, "error", err)
		return nil, toConnectError(err)
	}
	household.Members = []string{user.Email}

	s.logger.Info("Household created", "flat_code", household.Code)
	return connect.NewResponse(&pb.HouseholdResponse{Household: toProtoHousehold(household)}), nil
}

// JoinHousehold adds the caller to the household with the given flat code.
// Joining the household the caller is already in is a no-op.
func (s *HouseholdService) JoinHousehold(ctx context.Context, req *connect.Request[pb.JoinHouseholdRequest]) (*connect.Response[pb.HouseholdResponse], error) {
	user, err := currentUser(ctx, s.store)
	if err != nil {
		return nil, err
	}

	code := validation.NormalizeFlatCode(req.Msg.FlatCode)
	s.logger.Info("JoinHousehold request received", "user_id", user.ID, "flat_code", code)

	if err := validation.ValidateFlatCode(code); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if user.FlatCode != "" && user.FlatCode != code {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrAlreadyInHousehold)
	}

	// Look the household up first so an unknown code is reported as NotFound
	if _, err := s.store.GetHousehold(ctx, code); err != nil {
		logFailure(s.logger, "JoinHousehold failed", toConnectError(err), "flat_code", code)
		return nil, toConnectError(err)
	}
	if user.FlatCode != code {
		if err := s.store.SetUserFlatCode(ctx, user.ID, code); err != nil {
			s.logger.Error("JoinHousehold failed", "flat_code", code, "error", err)
			return nil, toConnectError(err)
		}
	}

	household, err := s.store.GetHousehold(ctx, code)
	if err != nil {
		return nil, toConnectError(err)
	}

	s.logger.Info("Joined household", "user_id", user.ID, "flat_code", code, "members_count", len(household.Members))
	return connect.NewResponse(&pb.HouseholdResponse{Household: toProtoHousehold(household)}), nil
}

// GetHousehold returns the caller's household and its members.
func (s *HouseholdService) GetHousehold(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.HouseholdResponse], error) {
	user, err := currentUser(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if user.FlatCode == "" {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrNoHousehold)
	}

	household, err := s.store.GetHousehold(ctx, user.FlatCode)
	if err != nil {
		logFailure(s.logger, "GetHousehold failed", toConnectError(err), "flat_code", user.FlatCode)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.HouseholdResponse{Household: toProtoHousehold(household)}), nil
}

// LeaveHousehold removes the caller from their household. Expenses and settlements
// that reference them are kept, so their balance stays visible to the others.
func (s *HouseholdService) LeaveHousehold(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
	user, err := currentUser(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if user.FlatCode == "" {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrNoHousehold)
	}

	if err := s.store.SetUserFlatCode(ctx, user.ID, ""); err != nil {
		s.logger.Error("LeaveHousehold failed", "user_id", user.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Left household", "user_id", user.ID, "flat_code", user.FlatCode)
	return connect.NewResponse(&emptypb.Empty{}), nil
}
