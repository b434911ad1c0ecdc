package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

// AccountRepo persists accounts in PostgreSQL
type AccountRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewAccountRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *AccountRepo {
	return &AccountRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateAccount inserts a new account row
func (r *AccountRepo) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO t_account (
			id, account_number, account_name, account_holder_name,
			balance, currency, user_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.AccountNumber,
		account.AccountName,
		account.AccountHolderName,
		account.Balance,
		account.Currency,
		account.UserID,
		account.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// GetAccountByID retrieves one account; a missing row yields (nil, nil)
func (r *AccountRepo) GetAccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	query := `
		SELECT id, account_number, account_name, account_holder_name,
			balance, currency, user_id, created_at
		FROM t_account
		WHERE id = $1
	`

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	return &account, nil
}

// GetAccountsByUserID lists every account owned by a user
func (r *AccountRepo) GetAccountsByUserID(ctx context.Context, userID string) ([]models.Account, error) {
	query := `
		SELECT id, account_number, account_name, account_holder_name,
			balance, currency, user_id, created_at
		FROM t_account
		WHERE user_id = $1
		ORDER BY created_at
	`

	var accounts []models.Account
	if err := r.db.SelectContext(ctx, &accounts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to query accounts by user: %w", err)
	}

	return accounts, nil
}

// UpdateBalance overwrites the account balance
func (r *AccountRepo) UpdateBalance(ctx context.Context, accountID string, balance decimal.Decimal) error {
	query := `UPDATE t_account SET balance = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, balance, accountID)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check balance update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("account not found: %s", accountID)
	}

	return nil
}

// DeleteAccount removes an account row
func (r *AccountRepo) DeleteAccount(ctx context.Context, accountID string) error {
	query := `DELETE FROM t_account WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check account delete: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("account not found: %s", accountID)
	}

	return nil
}
