// Package service implements the CommonSpace Connect handlers on top of the
// storage layer and the balance calculator.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/commonspace/internal/auth"
	"github.com/mmynk/commonspace/internal/calculator"
	"github.com/mmynk/commonspace/internal/middleware"
	"github.com/mmynk/commonspace/internal/models"
	"github.com/mmynk/commonspace/internal/storage"
	"github.com/mmynk/commonspace/internal/validation"
)

var (
	ErrNoHousehold        = errors.New("user is not in a household")
	ErrAlreadyInHousehold = errors.New("user already belongs to a household")
)

// currentUser loads the authenticated caller from storage.
func currentUser(ctx context.Context, users storage.UserStore) (*models.User, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	user, err := users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user == nil {
		// Token outlived its account
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
	}
	return user, nil
}

// householdScope resolves the caller and the members of their household.
func householdScope(ctx context.Context, store storage.Store) (*models.User, []string, error) {
	user, err := currentUser(ctx, store)
	if err != nil {
		return nil, nil, err
	}
	if user.FlatCode == "" {
		return nil, nil, connect.NewError(connect.CodeFailedPrecondition, ErrNoHousehold)
	}

	members, err := store.ListMembers(ctx, user.FlatCode)
	if err != nil {
		return nil, nil, connect.NewError(connect.CodeInternal, err)
	}
	return user, members, nil
}

// toConnectError maps domain and storage errors to Connect codes.
func toConnectError(err error) error {
	var connectErr *connect.Error
	var validationErr *calculator.ValidationError
	switch {
	case errors.As(err, &connectErr):
		return err
	case errors.As(err, &validationErr),
		errors.Is(err, validation.ErrEmptyText),
		errors.Is(err, validation.ErrInvalidEmail),
		errors.Is(err, validation.ErrInvalidFlatCode):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// notInHousehold reports a record from another household as missing.
func notInHousehold(kind, id string) error {
	return connect.NewError(connect.CodeNotFound, fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound))
}

func logFailure(logger *slog.Logger, msg string, err error, args ...any) {
	if connect.CodeOf(err) == connect.CodeInternal {
		logger.Error(msg, append(args, "error", err)...)
		return
	}
	logger.Warn(msg, append(args, "error", err)...)
}
