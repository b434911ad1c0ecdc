package account

import (
	"context"

	"github.com/veritasbank/veritas/internal/pkg/models"
)

// TransactionGW defines the interface for transaction service calls
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/veritasbank/veritas/services/account TransactionGW
type TransactionGW interface {
	SubmitDeposit(ctx context.Context, req models.TransactionRequest) error
}
