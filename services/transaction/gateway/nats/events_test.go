package gateway_nats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritasbank/veritas/internal/pkg/constants"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

type fakePublisher struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, data)
	return nil
}

func TestPublishTransactionEvent_Success(t *testing.T) {
	publisher := &fakePublisher{}
	gw := NewEventGW(publisher)

	event := models.TransactionEvent{
		TransactionID:        "t1",
		UserID:               "user-1",
		SourceAccountID:      "acc-a",
		DestinationAccountID: "acc-b",
		Type:                 models.TransactionTypeTransfer,
		Amount:               "50",
		AssetCode:            "GOLD",
	}

	err := gw.PublishTransactionEvent(context.Background(), event)
	require.NoError(t, err)

	require.Len(t, publisher.subjects, 1)
	assert.Equal(t, constants.SubjectTransactionNotification, publisher.subjects[0])

	var published models.TransactionEvent
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &published))
	assert.Equal(t, event, published)
	assert.Equal(t, "50", published.Amount)
}

func TestPublishTransactionEvent_PublishError(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("nats: connection closed")}
	gw := NewEventGW(publisher)

	err := gw.PublishTransactionEvent(context.Background(), models.TransactionEvent{TransactionID: "t1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection closed")
}
