package notification

import (
	"context"

	"github.com/veritasbank/veritas/internal/pkg/models"
)

// AccountGW defines the interface for account service calls
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/veritasbank/veritas/services/notification AccountGW
type AccountGW interface {
	GetAccountByID(ctx context.Context, accountID string) (*models.Account, error)
}
