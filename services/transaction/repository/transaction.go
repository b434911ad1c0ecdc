package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

// TransactionRepo persists the transaction ledger in PostgreSQL
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewTransactionRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTransaction appends one ledger row
func (r *TransactionRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO t_transaction (
			transaction_id, user_id, source_account_id, destination_account_id,
			type, amount, asset_code, transaction_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		txn.TransactionID,
		txn.UserID,
		nullable(txn.SourceAccountID),
		nullable(txn.DestinationAccountID),
		txn.Type,
		txn.Amount,
		txn.AssetCode,
		txn.TransactionTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransactionsByUserID retrieves the transactions a user initiated
func (r *TransactionRepo) GetTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	query := `
		SELECT id, transaction_id, user_id,
			COALESCE(source_account_id, '') AS source_account_id,
			COALESCE(destination_account_id, '') AS destination_account_id,
			type, amount, asset_code, transaction_time
		FROM t_transaction
		WHERE user_id = $1
	`

	var transactions []models.Transaction
	if err := r.db.SelectContext(ctx, &transactions, query, userID); err != nil {
		return nil, fmt.Errorf("failed to query transactions by user: %w", err)
	}

	return transactions, nil
}

// GetTransactionsByAccountIDs retrieves the transactions touching any of the
// given accounts on either side
func (r *TransactionRepo) GetTransactionsByAccountIDs(ctx context.Context, accountIDs []string) ([]models.Transaction, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, transaction_id, user_id,
			COALESCE(source_account_id, '') AS source_account_id,
			COALESCE(destination_account_id, '') AS destination_account_id,
			type, amount, asset_code, transaction_time
		FROM t_transaction
		WHERE source_account_id IN (?) OR destination_account_id IN (?)
	`, accountIDs, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build account transactions query: %w", err)
	}

	query = r.db.Rebind(query)

	var transactions []models.Transaction
	if err := r.db.SelectContext(ctx, &transactions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query transactions by accounts: %w", err)
	}

	return transactions, nil
}

// nullable maps an unset account id to NULL so one-sided transactions do not
// store empty strings
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
