package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/veritasbank/veritas/internal/pkg/constants"
	"github.com/veritasbank/veritas/internal/pkg/logger"
	"github.com/veritasbank/veritas/internal/pkg/models"
	natspkg "github.com/veritasbank/veritas/internal/pkg/nats"
	"github.com/veritasbank/veritas/services/notification"
)

// NotificationHandler consumes transaction events from NATS
type NotificationHandler struct {
	notificationUC notification.NotificationUC
	natsClient     *natspkg.Client
	subs           []*nats.Subscription
	cfg            *models.Config
}

// NewNotificationHandler creates a new notification NATS handler
func NewNotificationHandler(
	notificationUC notification.NotificationUC,
	client *natspkg.Client,
	cfg *models.Config,
) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		natsClient:     client,
		subs:           make([]*nats.Subscription, 0),
		cfg:            cfg,
	}
}

// InitNATSConsumers subscribes to the transaction event subject. The queue
// group spreads the events over notification service replicas.
func (h *NotificationHandler) InitNATSConsumers() error {
	logger.Info("Subscribing to transaction events",
		logger.String("subject", constants.SubjectTransactionNotification),
		logger.String("queue_group", constants.QueueGroupNotification))

	sub, err := h.natsClient.QueueSubscribe(
		constants.SubjectTransactionNotification,
		constants.QueueGroupNotification,
		h.handleTransactionEvent,
	)
	if err != nil {
		return err
	}

	h.subs = append(h.subs, sub)
	return nil
}

func (h *NotificationHandler) handleTransactionEvent(msg *nats.Msg) {
	var event models.TransactionEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to decode transaction event",
			logger.String("subject", msg.Subject),
			logger.ErrorField(err))
		return
	}

	if err := h.notificationUC.HandleTransactionEvent(context.Background(), event); err != nil {
		logger.Error("Failed to handle transaction event",
			logger.String("transaction_id", event.TransactionID),
			logger.ErrorField(err))
	}
}

// Drain unsubscribes every consumer
func (h *NotificationHandler) Drain() {
	for _, sub := range h.subs {
		if err := sub.Drain(); err != nil {
			logger.Warn("Failed to drain subscription", logger.Err(err))
		}
	}
}
