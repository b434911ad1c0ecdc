package nats

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/veritasbank/veritas/internal/pkg/constants"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/notification/mocks"
)

func setupConsumerTest(t *testing.T) (*NotificationHandler, *mocks.MockNotificationUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockNotificationUC(ctrl)
	handler := NewNotificationHandler(mockUC, nil, &models.Config{})
	return handler, mockUC
}

func TestHandleTransactionEventDispatchesDecodedEvent(t *testing.T) {
	handler, mockUC := setupConsumerTest(t)

	event := models.TransactionEvent{
		TransactionID:        "tx-1",
		UserID:               "user-1",
		SourceAccountID:      "acc-a",
		DestinationAccountID: "acc-b",
		Type:                 models.TransactionTypeTransfer,
		Amount:               "50",
		AssetCode:            "EUR",
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	mockUC.EXPECT().
		HandleTransactionEvent(gomock.Any(), event).
		Return(nil)

	handler.handleTransactionEvent(&nats.Msg{
		Subject: constants.SubjectTransactionNotification,
		Data:    data,
	})
}

func TestHandleTransactionEventIgnoresMalformedPayload(t *testing.T) {
	handler, _ := setupConsumerTest(t)

	handler.handleTransactionEvent(&nats.Msg{
		Subject: constants.SubjectTransactionNotification,
		Data:    []byte("not-json"),
	})
}

func TestHandleTransactionEventLogsUsecaseFailure(t *testing.T) {
	handler, mockUC := setupConsumerTest(t)

	event := models.TransactionEvent{
		TransactionID: "tx-2",
		UserID:        "user-1",
		Type:          models.TransactionTypeDeposit,
		Amount:        "25",
		AssetCode:     "GOLD",
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	mockUC.EXPECT().
		HandleTransactionEvent(gomock.Any(), event).
		Return(errors.New("account service down"))

	handler.handleTransactionEvent(&nats.Msg{
		Subject: constants.SubjectTransactionNotification,
		Data:    data,
	})
}
