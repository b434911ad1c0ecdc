package usecase

import (
	"context"
	"strings"

	"github.com/veritasbank/veritas/internal/pkg/constants"
	"github.com/veritasbank/veritas/internal/pkg/logger"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/notification"
)

// notificationUC fans a transaction event out to its recipients over
// websocket. Delivery is at most once: a recipient without an open
// connection is dropped, not queued.
type notificationUC struct {
	cfg       *models.Config
	accountGW notification.AccountGW
	notifier  notification.Notifier
}

// NewNotificationUC creates a new notification use case
func NewNotificationUC(
	cfg *models.Config,
	accountGW notification.AccountGW,
	notifier notification.Notifier,
) notification.NotificationUC {
	return &notificationUC{
		cfg:       cfg,
		accountGW: accountGW,
		notifier:  notifier,
	}
}

// HandleTransactionEvent resolves the recipients of one event and pushes it
// to each of them
func (uc *notificationUC) HandleTransactionEvent(ctx context.Context, event models.TransactionEvent) error {
	recipients := uc.resolveRecipients(ctx, event)

	logger.Info("Dispatching transaction notification",
		logger.String("transaction_id", event.TransactionID),
		logger.String("type", event.Type),
		logger.Int("recipients", len(recipients)))

	for _, userID := range recipients {
		uc.notifier.NotifyClient(userID, constants.EventTransactionNotification, event)
	}

	return nil
}

// resolveRecipients returns the initiating user plus, for transfers and
// deposits, the owner of the destination account. A failed owner lookup
// is logged and skipped rather than failing the whole event.
func (uc *notificationUC) resolveRecipients(ctx context.Context, event models.TransactionEvent) []string {
	seen := make(map[string]struct{})
	var recipients []string

	add := func(userID string) {
		if userID == "" {
			return
		}
		if _, ok := seen[userID]; ok {
			return
		}
		seen[userID] = struct{}{}
		recipients = append(recipients, userID)
	}

	add(event.UserID)

	// Event types arrive in whatever casing the caller submitted
	switch strings.ToLower(event.Type) {
	case models.TransactionTypeTransfer, models.TransactionTypeDeposit:
		if event.DestinationAccountID == "" {
			break
		}

		account, err := uc.accountGW.GetAccountByID(ctx, event.DestinationAccountID)
		if err != nil {
			logger.Warn("Failed to resolve destination account owner",
				logger.String("transaction_id", event.TransactionID),
				logger.String("account_id", event.DestinationAccountID),
				logger.Err(err))
			break
		}
		if account != nil {
			add(account.UserID)
		}
	}

	return recipients
}
