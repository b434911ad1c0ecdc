package account

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

// AccountUC defines the interface for account business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/veritasbank/veritas/services/account AccountUC
type AccountUC interface {
	CreateAccount(ctx context.Context, req models.AccountRequest) (*models.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*models.Account, error)
	GetAccountsForUser(ctx context.Context, userID string) ([]models.Account, error)
	DebitAccount(ctx context.Context, accountID string, amount decimal.Decimal) error
	CreditAccount(ctx context.Context, accountID string, amount decimal.Decimal) error
	DeleteAccount(ctx context.Context, accountID string) error
}
