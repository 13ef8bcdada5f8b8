package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/commonspace/internal/models"
	"github.com/mmynk/commonspace/internal/storage"
	"github.com/mmynk/commonspace/internal/validation"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "commonspace-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// seedHousehold creates a household with one user per e-mail.
func seedHousehold(t *testing.T, store *SQLiteStore, emails ...string) *models.Household {
	t.Helper()
	ctx := context.Background()

	household := &models.Household{Name: "Test Flat"}
	if err := store.CreateHousehold(ctx, household); err != nil {
		t.Fatalf("CreateHousehold failed: %v", err)
	}
	for _, email := range emails {
		user := models.NewUser(email, email, "hash")
		user.FlatCode = household.Code
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}
	return household
}

func TestHouseholds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateHousehold generates code and timestamp", func(t *testing.T) {
		household := &models.Household{Name: "Storgatan 12"}
		if err := store.CreateHousehold(ctx, household); err != nil {
			t.Fatalf("CreateHousehold failed: %v", err)
		}

		if err := validation.ValidateFlatCode(household.Code); err != nil {
			t.Errorf("generated code %q invalid: %v", household.Code, err)
		}
		if household.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetHousehold lists members sorted", func(t *testing.T) {
		household := seedHousehold(t, store, "cecilia@flat.se", "anna@flat.se", "bo@flat.se")

		got, err := store.GetHousehold(ctx, household.Code)
		if err != nil {
			t.Fatalf("GetHousehold failed: %v", err)
		}
		if got.Name != "Test Flat" {
			t.Errorf("Name mismatch: got %s", got.Name)
		}
		want := []string{"anna@flat.se", "bo@flat.se", "cecilia@flat.se"}
		if len(got.Members) != len(want) {
			t.Fatalf("Members count mismatch: got %v, want %v", got.Members, want)
		}
		for i := range want {
			if got.Members[i] != want[i] {
				t.Errorf("Member %d: got %s, want %s", i, got.Members[i], want[i])
			}
		}
	})

	t.Run("GetHousehold returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetHousehold(ctx, "XXX-XXX-XXX")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("SetUserFlatCode moves user out of household", func(t *testing.T) {
		household := seedHousehold(t, store, "leaver@flat.se", "stayer@flat.se")
		user, err := store.GetUserByEmail(ctx, "leaver@flat.se")
		if err != nil || user == nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if user.FlatCode != household.Code {
			t.Errorf("FlatCode mismatch: got %s, want %s", user.FlatCode, household.Code)
		}

		if err := store.SetUserFlatCode(ctx, user.ID, ""); err != nil {
			t.Fatalf("SetUserFlatCode failed: %v", err)
		}

		members, err := store.ListMembers(ctx, household.Code)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 1 || members[0] != "stayer@flat.se" {
			t.Errorf("Expected only stayer@flat.se, got %v", members)
		}
	})

	t.Run("CreateHouseholdWithMember sets creator flat code", func(t *testing.T) {
		user := models.NewUser("founder@flat.se", "Founder", "hash")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		household := &models.Household{Name: "Founders"}
		if err := store.CreateHouseholdWithMember(ctx, household, user.ID); err != nil {
			t.Fatalf("CreateHouseholdWithMember failed: %v", err)
		}

		members, err := store.ListMembers(ctx, household.Code)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 1 || members[0] != "founder@flat.se" {
			t.Errorf("Expected only founder@flat.se, got %v", members)
		}
	})

	t.Run("CreateHouseholdWithMember rolls back on unknown user", func(t *testing.T) {
		household := &models.Household{Name: "Orphan"}
		err := store.CreateHouseholdWithMember(ctx, household, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}

		_, err = store.GetHousehold(ctx, household.Code)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected household %s to be rolled back, got %v", household.Code, err)
		}
	})

	t.Run("SetUserFlatCode unknown user", func(t *testing.T) {
		err := store.SetUserFlatCode(ctx, "nonexistent-id", "")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("anna@flat.se", "Anna", "bcrypt-hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "anna@flat.se")
	if err != nil || byEmail == nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail.ID != user.ID || byEmail.DisplayName != "Anna" || byEmail.PasswordHash != "bcrypt-hash" {
		t.Errorf("User mismatch: got %+v", byEmail)
	}
	if byEmail.FlatCode != "" {
		t.Errorf("Expected no flat code, got %s", byEmail.FlatCode)
	}

	byID, err := store.GetUserByID(ctx, user.ID)
	if err != nil || byID == nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}

	missing, err := store.GetUserByEmail(ctx, "nobody@flat.se")
	if err != nil || missing != nil {
		t.Errorf("Expected nil user and nil error, got %v, %v", missing, err)
	}

	if err := store.CreateUser(ctx, models.NewUser("anna@flat.se", "Other", "x")); err == nil {
		t.Error("Expected duplicate e-mail to fail")
	}
}

func TestExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	household := seedHousehold(t, store, "a@flat.se", "b@flat.se", "c@flat.se")

	t.Run("CreateExpense generates ID and round-trips", func(t *testing.T) {
		expense := &models.Expense{
			FlatCode:     household.Code,
			Description:  "Groceries",
			Amount:       decimal.RequireFromString("90.55"),
			PaidBy:       "a@flat.se",
			SplitBetween: []string{"c@flat.se", "a@flat.se", "b@flat.se"},
			CreatedBy:    "user-1",
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.ID == "" || expense.CreatedAt == 0 || expense.Date == 0 {
			t.Fatalf("Expected ID, CreatedAt and Date to be set: %+v", expense)
		}

		got, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if !got.Amount.Equal(expense.Amount) {
			t.Errorf("Amount mismatch: got %s, want %s", got.Amount, expense.Amount)
		}
		if got.Description != "Groceries" || got.PaidBy != "a@flat.se" || got.FlatCode != household.Code {
			t.Errorf("Expense mismatch: %+v", got)
		}
		// Split order is preserved
		for i, member := range expense.SplitBetween {
			if got.SplitBetween[i] != member {
				t.Errorf("Split member %d: got %s, want %s", i, got.SplitBetween[i], member)
			}
		}
	})

	t.Run("UpdateExpense replaces split", func(t *testing.T) {
		expense := &models.Expense{
			FlatCode:     household.Code,
			Description:  "Internet",
			Amount:       decimal.NewFromInt(300),
			PaidBy:       "b@flat.se",
			SplitBetween: []string{"a@flat.se", "b@flat.se", "c@flat.se"},
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		expense.Description = "Internet (March)"
		expense.Amount = decimal.NewFromInt(200)
		expense.SplitBetween = []string{"a@flat.se", "b@flat.se"}
		if err := store.UpdateExpense(ctx, expense); err != nil {
			t.Fatalf("UpdateExpense failed: %v", err)
		}

		got, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got.Description != "Internet (March)" || !got.Amount.Equal(decimal.NewFromInt(200)) {
			t.Errorf("Update not persisted: %+v", got)
		}
		if len(got.SplitBetween) != 2 {
			t.Errorf("Expected 2 split members, got %v", got.SplitBetween)
		}
	})

	t.Run("UpdateExpense nonexistent", func(t *testing.T) {
		err := store.UpdateExpense(ctx, &models.Expense{ID: "nonexistent-id", Amount: decimal.NewFromInt(1)})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteExpense", func(t *testing.T) {
		expense := &models.Expense{
			FlatCode:     household.Code,
			Description:  "Soap",
			Amount:       decimal.NewFromInt(5),
			PaidBy:       "c@flat.se",
			SplitBetween: []string{"c@flat.se"},
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if err := store.DeleteExpense(ctx, expense.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}
		if _, err := store.GetExpense(ctx, expense.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := store.DeleteExpense(ctx, expense.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func TestListExpensesByHousehold(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	household := seedHousehold(t, store, "a@flat.se", "b@flat.se")
	other := seedHousehold(t, store, "z@other.se")

	for i, date := range []int64{1000, 3000, 2000} {
		expense := &models.Expense{
			FlatCode:     household.Code,
			Description:  "Expense",
			Amount:       decimal.NewFromInt(int64(10 * (i + 1))),
			PaidBy:       "a@flat.se",
			SplitBetween: []string{"a@flat.se", "b@flat.se"},
			Date:         date,
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
	}
	if err := store.CreateExpense(ctx, &models.Expense{
		FlatCode:     other.Code,
		Description:  "Elsewhere",
		Amount:       decimal.NewFromInt(1),
		PaidBy:       "z@other.se",
		SplitBetween: []string{"z@other.se"},
	}); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	expenses, err := store.ListExpensesByHousehold(ctx, household.Code)
	if err != nil {
		t.Fatalf("ListExpensesByHousehold failed: %v", err)
	}
	if len(expenses) != 3 {
		t.Fatalf("Expected 3 expenses, got %d", len(expenses))
	}
	wantDates := []int64{3000, 2000, 1000}
	for i, e := range expenses {
		if e.Date != wantDates[i] {
			t.Errorf("Expense %d date: got %d, want %d", i, e.Date, wantDates[i])
		}
		if len(e.SplitBetween) != 2 {
			t.Errorf("Expense %d split: got %v", i, e.SplitBetween)
		}
	}
}

func TestSettlements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	household := seedHousehold(t, store, "a@flat.se", "b@flat.se")

	first := &models.Settlement{
		FlatCode:  household.Code,
		FromUser:  "b@flat.se",
		ToUser:    "a@flat.se",
		Amount:    decimal.RequireFromString("30.25"),
		Date:      100,
		CreatedBy: "user-b",
		Note:      "Swish",
	}
	second := &models.Settlement{
		FlatCode: household.Code,
		FromUser: "a@flat.se",
		ToUser:   "b@flat.se",
		Amount:   decimal.NewFromInt(5),
		Date:     200,
	}
	for _, s := range []*models.Settlement{first, second} {
		if err := store.CreateSettlement(ctx, s); err != nil {
			t.Fatalf("CreateSettlement failed: %v", err)
		}
		if s.ID == "" {
			t.Fatal("Expected settlement ID to be generated")
		}
	}

	got, err := store.GetSettlement(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetSettlement failed: %v", err)
	}
	if !got.Amount.Equal(first.Amount) || got.Note != "Swish" || got.FromUser != "b@flat.se" {
		t.Errorf("Settlement mismatch: %+v", got)
	}

	list, err := store.ListSettlementsByHousehold(ctx, household.Code)
	if err != nil {
		t.Fatalf("ListSettlementsByHousehold failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID {
		t.Errorf("Expected newest settlement first, got %+v", list)
	}
	if list[0].Note != "" {
		t.Errorf("Expected empty note, got %q", list[0].Note)
	}

	if err := store.DeleteSettlement(ctx, first.ID); err != nil {
		t.Fatalf("DeleteSettlement failed: %v", err)
	}
	if _, err := store.GetSettlement(ctx, first.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeleteSettlement(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
