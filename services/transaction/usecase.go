package transaction

import (
	"context"

	"github.com/veritasbank/veritas/internal/pkg/models"
)

// TransactionUC defines the interface for transaction business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/veritasbank/veritas/services/transaction TransactionUC
type TransactionUC interface {
	ProcessTransaction(ctx context.Context, req models.TransactionRequest) (string, error)
	GetTransactionsForUser(ctx context.Context, userID string) ([]models.Transaction, error)
}
