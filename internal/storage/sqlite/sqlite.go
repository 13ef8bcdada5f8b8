// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/commonspace/internal/models"
	"github.com/mmynk/commonspace/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// codeAttempts bounds retries when a generated flat code collides with an existing one.
const codeAttempts = 5

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Foreign keys are per connection, so enable them in the DSN for every pooled connection
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateHousehold persists a new household, generating a flat code if none is set.
func (s *SQLiteStore) CreateHousehold(ctx context.Context, household *models.Household) error {
	if err := s.prepareHousehold(ctx, household); err != nil {
		return err
	}
	return insertHousehold(ctx, s.db, household)
}

// CreateHouseholdWithMember creates a household and moves userID into it in one
// transaction, so a failed membership update leaves no empty household behind.
func (s *SQLiteStore) CreateHouseholdWithMember(ctx context.Context, household *models.Household, userID string) error {
	if err := s.prepareHousehold(ctx, household); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertHousehold(ctx, tx, household); err != nil {
		return err
	}
	if err := setFlatCode(ctx, tx, userID, household.Code); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *SQLiteStore) prepareHousehold(ctx context.Context, household *models.Household) error {
	if household.CreatedAt == 0 {
		household.CreatedAt = time.Now().Unix()
	}

	if household.Code == "" {
		code, err := s.unusedFlatCode(ctx)
		if err != nil {
			return err
		}
		household.Code = code
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertHousehold(ctx context.Context, db execer, household *models.Household) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO households (code, name, created_at) VALUES (?, ?, ?)",
		household.Code, household.Name, household.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert household: %w", err)
	}

	return nil
}

func (s *SQLiteStore) unusedFlatCode(ctx context.Context) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code, err := models.NewFlatCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate flat code: %w", err)
		}

		var exists int
		err = s.db.QueryRowContext(ctx, "SELECT 1 FROM households WHERE code = ?", code).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check flat code: %w", err)
		}
	}
	return "", fmt.Errorf("failed to find an unused flat code after %d attempts", codeAttempts)
}

// GetHousehold retrieves a household by flat code, including its members.
func (s *SQLiteStore) GetHousehold(ctx context.Context, code string) (*models.Household, error) {
	household := &models.Household{}
	err := s.db.QueryRowContext(ctx,
		"SELECT code, name, created_at FROM households WHERE code = ?",
		code,
	).Scan(&household.Code, &household.Name, &household.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("household %s: %w", code, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get household: %w", err)
	}

	household.Members, err = s.ListMembers(ctx, code)
	if err != nil {
		return nil, err
	}

	return household, nil
}

// ListMembers returns the e-mails of all users in the household, sorted.
func (s *SQLiteStore) ListMembers(ctx context.Context, code string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT email FROM users WHERE flat_code = ? ORDER BY email",
		code,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}
