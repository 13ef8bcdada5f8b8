package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/commonspace/internal/models"
	"github.com/mmynk/commonspace/internal/storage"
)

// CreateExpense persists a new expense and its split to the database.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate ID if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	if expense.Date == 0 {
		expense.Date = expense.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, flat_code, description, amount, paid_by, date, created_at, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.FlatCode, expense.Description, expense.Amount,
		expense.PaidBy, expense.Date, expense.CreatedAt, expense.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertSplit(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertSplit(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	for i, member := range expense.SplitBetween {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, member, position) VALUES (?, ?, ?)",
			expense.ID, member, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split member: %w", err)
		}
	}
	return nil
}

// GetExpense retrieves an expense by ID, including its split.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, flat_code, description, amount, paid_by, date, created_at, created_by
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.FlatCode, &expense.Description, &expense.Amount,
		&expense.PaidBy, &expense.Date, &expense.CreatedAt, &expense.CreatedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	splits, err := s.loadSplits(ctx, "expense_id = ?", expenseID)
	if err != nil {
		return nil, err
	}
	expense.SplitBetween = splits[expense.ID]

	return expense, nil
}

// loadSplits returns split members keyed by expense ID, in their recorded order.
func (s *SQLiteStore) loadSplits(ctx context.Context, where string, arg any) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT expense_id, member FROM expense_splits WHERE `+where+` ORDER BY expense_id, position`,
		arg,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense splits: %w", err)
	}
	defer rows.Close()

	splits := make(map[string][]string)
	for rows.Next() {
		var expenseID, member string
		if err := rows.Scan(&expenseID, &member); err != nil {
			return nil, fmt.Errorf("failed to scan split member: %w", err)
		}
		splits[expenseID] = append(splits[expenseID], member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate split members: %w", err)
	}

	return splits, nil
}

// UpdateExpense replaces the editable fields and the split of an existing expense.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE expenses SET description = ?, amount = ?, paid_by = ?, date = ? WHERE id = ?`,
		expense.Description, expense.Amount, expense.PaidBy, expense.Date, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated expense: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", expense.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear expense split: %w", err)
	}
	if err := insertSplit(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteExpense removes an expense by ID. Its split rows cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted expense: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}

	return nil
}

// ListExpensesByHousehold retrieves all expenses for a household, newest first.
func (s *SQLiteStore) ListExpensesByHousehold(ctx context.Context, flatCode string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, flat_code, description, amount, paid_by, date, created_at, created_by
		 FROM expenses WHERE flat_code = ? ORDER BY date DESC, created_at DESC`,
		flatCode,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by household: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		if err := rows.Scan(&expense.ID, &expense.FlatCode, &expense.Description, &expense.Amount,
			&expense.PaidBy, &expense.Date, &expense.CreatedAt, &expense.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	splits, err := s.loadSplits(ctx,
		"expense_id IN (SELECT id FROM expenses WHERE flat_code = ?)", flatCode)
	if err != nil {
		return nil, err
	}
	for _, expense := range expenses {
		expense.SplitBetween = splits[expense.ID]
	}

	return expenses, nil
}
