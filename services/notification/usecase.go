package notification

import (
	"context"

	"github.com/veritasbank/veritas/internal/pkg/models"
)

// NotificationUC defines the interface for notification fan-out logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/veritasbank/veritas/services/notification NotificationUC
type NotificationUC interface {
	HandleTransactionEvent(ctx context.Context, event models.TransactionEvent) error
}

// Notifier pushes an event to one connected user
type Notifier interface {
	NotifyClient(userID string, event string, data interface{})
}
