package transaction

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

// AccountGW defines the interface for account service calls
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/veritasbank/veritas/services/transaction AccountGW,AssetGW,EventGW
type AccountGW interface {
	GetAccountByID(ctx context.Context, accountID string) (*models.Account, error)
	GetAccountsForUser(ctx context.Context, userID string) ([]models.Account, error)
	DebitAccount(ctx context.Context, accountID string, amount decimal.Decimal) error
	CreditAccount(ctx context.Context, accountID string, amount decimal.Decimal) error
}

// AssetGW defines the interface for asset inventory calls
type AssetGW interface {
	CheckAssetAvailability(ctx context.Context, assetCodes []string, amounts []int) ([]models.AssetAvailability, error)
	UpdateAssetAmount(ctx context.Context, assetCode string, amount int) error
}

// EventGW defines the interface for publishing transaction events
type EventGW interface {
	PublishTransactionEvent(ctx context.Context, event models.TransactionEvent) error
}
