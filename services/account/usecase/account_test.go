package usecase

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	"github.com/veritasbank/veritas/internal/pkg/constants"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/account/mocks"
)

type fakeCache struct {
	entries map[string]string
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	value, ok := c.entries[key]
	if !ok {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	switch v := value.(type) {
	case []byte:
		c.entries[key] = string(v)
	case string:
		c.entries[key] = v
	}
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	c.deletes = append(c.deletes, key)
	return nil
}

func setupAccountUC(t *testing.T) (*accountUC, *mocks.MockAccountRepo, *mocks.MockTransactionGW, *fakeCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockAccountRepo(ctrl)
	gw := mocks.NewMockTransactionGW(ctrl)
	cache := newFakeCache()

	uc := NewAccountUC(&models.Config{}, repo, cache, gw)
	return uc.(*accountUC), repo, gw, cache
}

func TestCreateAccount_WithInitialDeposit(t *testing.T) {
	uc, repo, gw, _ := setupAccountUC(t)

	var created *models.Account
	repo.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc *models.Account) error {
			created = acc
			return nil
		})

	gw.EXPECT().
		SubmitDeposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.TransactionRequest) error {
			assert.Equal(t, "user-1", req.UserID)
			assert.Equal(t, created.ID, req.DestinationAccountID)
			assert.Equal(t, models.TransactionTypeDeposit, req.Type)
			assert.Equal(t, "EUR", req.AssetCode)
			assert.True(t, req.Amount.Equal(decimal.NewFromInt(100)))
			return nil
		})

	acc, err := uc.CreateAccount(context.Background(), models.AccountRequest{
		AccountName:       "Savings",
		AccountHolderName: "Jane Doe",
		Balance:           decimal.NewFromInt(100),
		Currency:          "EUR",
		UserID:            "user-1",
	})

	require.NoError(t, err)
	// The row itself starts at zero; the opening balance arrives through
	// the ledger
	assert.True(t, acc.Balance.IsZero())
	assert.Equal(t, "user-1", acc.UserID)
	assert.NotEmpty(t, acc.ID)
}

func TestCreateAccount_ZeroBalanceSkipsDeposit(t *testing.T) {
	uc, repo, _, _ := setupAccountUC(t)

	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)

	acc, err := uc.CreateAccount(context.Background(), models.AccountRequest{
		AccountHolderName: "Jane Doe",
		Currency:          "EUR",
		UserID:            "user-1",
	})

	require.NoError(t, err)
	assert.NotNil(t, acc)
}

func TestCreateAccount_Validation(t *testing.T) {
	uc, _, _, _ := setupAccountUC(t)

	_, err := uc.CreateAccount(context.Background(), models.AccountRequest{
		AccountHolderName: "Jane Doe",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = uc.CreateAccount(context.Background(), models.AccountRequest{
		UserID: "user-1",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGenerateAccountNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{2}\d{2}-\d{4}-\d{4}-\d{4}-\d{4}$`)

	for i := 0; i < 20; i++ {
		number := generateAccountNumber()
		assert.Regexp(t, pattern, number)
	}
}

func TestGetAccountsForUser_CacheMissThenHit(t *testing.T) {
	uc, repo, _, cache := setupAccountUC(t)

	stored := []models.Account{{ID: "acc-1", UserID: "user-1"}}
	repo.EXPECT().
		GetAccountsByUserID(gomock.Any(), "user-1").
		Return(stored, nil).
		Times(1)

	first, err := uc.GetAccountsForUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// The listing is now cached, so the second call must not touch the
	// repository
	second, err := uc.GetAccountsForUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	key := fmt.Sprintf(constants.KeyUserAccounts, "user-1")
	_, ok := cache.entries[key]
	assert.True(t, ok)
}

func TestGetAccountsForUser_CorruptCacheFallsThrough(t *testing.T) {
	uc, repo, _, cache := setupAccountUC(t)

	key := fmt.Sprintf(constants.KeyUserAccounts, "user-1")
	cache.entries[key] = "{not json"

	repo.EXPECT().
		GetAccountsByUserID(gomock.Any(), "user-1").
		Return([]models.Account{{ID: "acc-1"}}, nil)

	accounts, err := uc.GetAccountsForUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestDebitAccount_Success(t *testing.T) {
	uc, repo, _, cache := setupAccountUC(t)

	repo.EXPECT().
		GetAccountByID(gomock.Any(), "acc-1").
		Return(&models.Account{ID: "acc-1", UserID: "user-1", Balance: decimal.NewFromInt(100)}, nil)
	repo.EXPECT().
		UpdateBalance(gomock.Any(), "acc-1", decimal.NewFromInt(60)).
		Return(nil)

	err := uc.DebitAccount(context.Background(), "acc-1", decimal.NewFromInt(40))
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyUserAccounts, "user-1")
	assert.Contains(t, cache.deletes, key)
}

func TestDebitAccount_InsufficientFunds(t *testing.T) {
	uc, repo, _, _ := setupAccountUC(t)

	repo.EXPECT().
		GetAccountByID(gomock.Any(), "acc-1").
		Return(&models.Account{ID: "acc-1", Balance: decimal.NewFromInt(10)}, nil)

	err := uc.DebitAccount(context.Background(), "acc-1", decimal.NewFromInt(40))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
}

func TestDebitAccount_NotFound(t *testing.T) {
	uc, repo, _, _ := setupAccountUC(t)

	repo.EXPECT().GetAccountByID(gomock.Any(), "missing").Return(nil, nil)

	err := uc.DebitAccount(context.Background(), "missing", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreditAccount_Success(t *testing.T) {
	uc, repo, _, cache := setupAccountUC(t)

	repo.EXPECT().
		GetAccountByID(gomock.Any(), "acc-1").
		Return(&models.Account{ID: "acc-1", UserID: "user-1", Balance: decimal.NewFromInt(100)}, nil)
	repo.EXPECT().
		UpdateBalance(gomock.Any(), "acc-1", decimal.NewFromInt(150)).
		Return(nil)

	err := uc.CreditAccount(context.Background(), "acc-1", decimal.NewFromInt(50))
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyUserAccounts, "user-1")
	assert.Contains(t, cache.deletes, key)
}

func TestDeleteAccount_Success(t *testing.T) {
	uc, repo, _, _ := setupAccountUC(t)

	repo.EXPECT().
		GetAccountByID(gomock.Any(), "acc-1").
		Return(&models.Account{ID: "acc-1", UserID: "user-1"}, nil)
	repo.EXPECT().DeleteAccount(gomock.Any(), "acc-1").Return(nil)

	err := uc.DeleteAccount(context.Background(), "acc-1")
	assert.NoError(t, err)
}

func TestDeleteAccount_NotFound(t *testing.T) {
	uc, repo, _, _ := setupAccountUC(t)

	repo.EXPECT().GetAccountByID(gomock.Any(), "missing").Return(nil, nil)

	err := uc.DeleteAccount(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
