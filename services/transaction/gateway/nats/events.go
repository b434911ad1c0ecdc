package gateway_nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/veritasbank/veritas/internal/pkg/constants"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

// Publisher is the publishing surface of the NATS client
type Publisher interface {
	Publish(subject string, data []byte) error
}

// EventGW publishes transaction events over NATS
type EventGW struct {
	publisher Publisher
}

// NewEventGW creates a new event gateway
func NewEventGW(publisher Publisher) *EventGW {
	return &EventGW{
		publisher: publisher,
	}
}

// PublishTransactionEvent emits one event per committed transaction
func (g *EventGW) PublishTransactionEvent(ctx context.Context, event models.TransactionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction event: %w", err)
	}

	return g.publisher.Publish(constants.SubjectTransactionNotification, data)
}
