package transaction

import (
	"context"

	"github.com/veritasbank/veritas/internal/pkg/models"
)

// TransactionRepo defines the interface for ledger data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/veritasbank/veritas/services/transaction TransactionRepo
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error)
	GetTransactionsByAccountIDs(ctx context.Context, accountIDs []string) ([]models.Transaction, error)
}
