package account

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

// AccountRepo defines the interface for account persistence
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/veritasbank/veritas/services/account AccountRepo
type AccountRepo interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccountByID(ctx context.Context, accountID string) (*models.Account, error)
	GetAccountsByUserID(ctx context.Context, userID string) ([]models.Account, error)
	UpdateBalance(ctx context.Context, accountID string, balance decimal.Decimal) error
	DeleteAccount(ctx context.Context, accountID string) error
}
