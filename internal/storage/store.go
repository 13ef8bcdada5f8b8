// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/commonspace/internal/models"
)

// ErrNotFound is returned (wrapped) when a record does not exist.
var ErrNotFound = errors.New("not found")

// UserStore holds user accounts.
type UserStore interface {
	// CreateUser inserts a new user. The user.ID field must be set.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil and no error if no user has this e-mail.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil and no error if the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// SetUserFlatCode moves a user into a household. An empty code removes the user
	// from their household.
	SetUserFlatCode(ctx context.Context, userID, flatCode string) error
}

// HouseholdStore holds households and their membership.
type HouseholdStore interface {
	// CreateHousehold persists a new household. household.Code is generated
	// when empty.
	CreateHousehold(ctx context.Context, household *models.Household) error

	// CreateHouseholdWithMember creates the household and sets userID's flat
	// code to it atomically. Neither change is kept if either fails.
	CreateHouseholdWithMember(ctx context.Context, household *models.Household, userID string) error

	// GetHousehold returns the household with its member e-mails.
	GetHousehold(ctx context.Context, code string) (*models.Household, error)

	// ListMembers returns the e-mails of the household members, sorted.
	ListMembers(ctx context.Context, code string) ([]string, error)
}

// ExpenseStore holds expenses and settlements, scoped per household.
type ExpenseStore interface {
	// CreateExpense persists a new expense. The expense.ID field will be populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)
	UpdateExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpensesByHousehold returns the household's expenses, newest date first.
	ListExpensesByHousehold(ctx context.Context, flatCode string) ([]*models.Expense, error)

	CreateSettlement(ctx context.Context, settlement *models.Settlement) error
	GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error)
	DeleteSettlement(ctx context.Context, settlementID string) error

	// ListSettlementsByHousehold returns the household's settlements, newest date first.
	ListSettlementsByHousehold(ctx context.Context, flatCode string) ([]*models.Settlement, error)
}

// Store defines the interface for all storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	UserStore
	HouseholdStore
	ExpenseStore

	// Close releases any resources held by the store.
	Close() error
}
