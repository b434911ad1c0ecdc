package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/veritasbank/veritas/internal/pkg/constants"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/notification/mocks"
)

// fakeNotifier records every push so tests can assert on recipients
type fakeNotifier struct {
	pushes []push
}

type push struct {
	userID string
	event  string
	data   interface{}
}

func (f *fakeNotifier) NotifyClient(userID string, event string, data interface{}) {
	f.pushes = append(f.pushes, push{userID: userID, event: event, data: data})
}

func (f *fakeNotifier) recipients() []string {
	var ids []string
	for _, p := range f.pushes {
		ids = append(ids, p.userID)
	}
	return ids
}

func setupNotificationUC(t *testing.T) (*notificationUC, *mocks.MockAccountGW, *fakeNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	accountGW := mocks.NewMockAccountGW(ctrl)
	notifier := &fakeNotifier{}

	uc := NewNotificationUC(&models.Config{}, accountGW, notifier).(*notificationUC)
	return uc, accountGW, notifier
}

func TestHandleTransactionEventWithdrawalNotifiesInitiatorOnly(t *testing.T) {
	uc, _, notifier := setupNotificationUC(t)

	event := models.TransactionEvent{
		TransactionID:   "tx-1",
		UserID:          "user-1",
		SourceAccountID: "acc-a",
		Type:            models.TransactionTypeWithdrawal,
		Amount:          "30",
		AssetCode:       "EUR",
	}

	err := uc.HandleTransactionEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, notifier.recipients())
	assert.Equal(t, constants.EventTransactionNotification, notifier.pushes[0].event)
	assert.Equal(t, event, notifier.pushes[0].data)
}

func TestHandleTransactionEventTransferNotifiesDestinationOwner(t *testing.T) {
	uc, accountGW, notifier := setupNotificationUC(t)

	accountGW.EXPECT().
		GetAccountByID(gomock.Any(), "acc-b").
		Return(&models.Account{ID: "acc-b", UserID: "user-2"}, nil)

	event := models.TransactionEvent{
		TransactionID:        "tx-2",
		UserID:               "user-1",
		SourceAccountID:      "acc-a",
		DestinationAccountID: "acc-b",
		Type:                 models.TransactionTypeTransfer,
		Amount:               "50",
		AssetCode:            "EUR",
	}

	err := uc.HandleTransactionEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, []string{"user-1", "user-2"}, notifier.recipients())
}

func TestHandleTransactionEventDepositNotifiesDestinationOwner(t *testing.T) {
	uc, accountGW, notifier := setupNotificationUC(t)

	accountGW.EXPECT().
		GetAccountByID(gomock.Any(), "acc-b").
		Return(&models.Account{ID: "acc-b", UserID: "user-2"}, nil)

	event := models.TransactionEvent{
		TransactionID:        "tx-3",
		UserID:               "user-1",
		DestinationAccountID: "acc-b",
		Type:                 models.TransactionTypeDeposit,
		Amount:               "25",
		AssetCode:            "GOLD",
	}

	err := uc.HandleTransactionEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, []string{"user-1", "user-2"}, notifier.recipients())
}

func TestHandleTransactionEventMixedCaseTypeNotifiesDestinationOwner(t *testing.T) {
	uc, accountGW, notifier := setupNotificationUC(t)

	accountGW.EXPECT().
		GetAccountByID(gomock.Any(), "acc-b").
		Return(&models.Account{ID: "acc-b", UserID: "user-2"}, nil)

	event := models.TransactionEvent{
		TransactionID:        "tx-8",
		UserID:               "user-1",
		SourceAccountID:      "acc-a",
		DestinationAccountID: "acc-b",
		Type:                 "Transfer",
		Amount:               "50",
		AssetCode:            "EUR",
	}

	err := uc.HandleTransactionEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, []string{"user-1", "user-2"}, notifier.recipients())
}

func TestHandleTransactionEventOwnerLookupFailureSkipsDestination(t *testing.T) {
	uc, accountGW, notifier := setupNotificationUC(t)

	accountGW.EXPECT().
		GetAccountByID(gomock.Any(), "acc-b").
		Return(nil, errors.New("connection refused"))

	event := models.TransactionEvent{
		TransactionID:        "tx-4",
		UserID:               "user-1",
		SourceAccountID:      "acc-a",
		DestinationAccountID: "acc-b",
		Type:                 models.TransactionTypeTransfer,
		Amount:               "50",
		AssetCode:            "EUR",
	}

	err := uc.HandleTransactionEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, notifier.recipients())
}

func TestHandleTransactionEventSelfTransferDedupesRecipient(t *testing.T) {
	uc, accountGW, notifier := setupNotificationUC(t)

	accountGW.EXPECT().
		GetAccountByID(gomock.Any(), "acc-b").
		Return(&models.Account{ID: "acc-b", UserID: "user-1"}, nil)

	event := models.TransactionEvent{
		TransactionID:        "tx-5",
		UserID:               "user-1",
		SourceAccountID:      "acc-a",
		DestinationAccountID: "acc-b",
		Type:                 models.TransactionTypeTransfer,
		Amount:               "10",
		AssetCode:            "EUR",
	}

	err := uc.HandleTransactionEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, notifier.recipients())
}

func TestHandleTransactionEventEmptyInitiatorSkipped(t *testing.T) {
	uc, accountGW, notifier := setupNotificationUC(t)

	accountGW.EXPECT().
		GetAccountByID(gomock.Any(), "acc-b").
		Return(&models.Account{ID: "acc-b", UserID: "user-2"}, nil)

	event := models.TransactionEvent{
		TransactionID:        "tx-6",
		DestinationAccountID: "acc-b",
		Type:                 models.TransactionTypeDeposit,
		Amount:               "5",
		AssetCode:            "EUR",
	}

	err := uc.HandleTransactionEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, []string{"user-2"}, notifier.recipients())
}

func TestHandleTransactionEventDepositWithoutDestinationAccount(t *testing.T) {
	uc, _, notifier := setupNotificationUC(t)

	event := models.TransactionEvent{
		TransactionID: "tx-7",
		UserID:        "user-1",
		Type:          models.TransactionTypeDeposit,
		Amount:        "5",
		AssetCode:     "EUR",
	}

	err := uc.HandleTransactionEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, notifier.recipients())
}
