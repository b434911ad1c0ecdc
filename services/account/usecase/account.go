package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	"github.com/veritasbank/veritas/internal/pkg/constants"
	"github.com/veritasbank/veritas/internal/pkg/logger"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/account"
)

// Cache is the subset of the redis client the account use case needs
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

const cacheTTL = 5 * time.Minute

var countryCodes = []string{
	"AD", "AT", "BE", "CH", "DE", "DK", "ES", "FI", "FR",
	"GB", "IE", "IT", "LU", "NL", "NO", "PT", "SE",
}

// accountUC implements account management. The per-user account listing is
// cached in redis and dropped on every account write.
type accountUC struct {
	cfg           *models.Config
	repo          account.AccountRepo
	cache         Cache
	transactionGW account.TransactionGW
}

// NewAccountUC creates a new account use case
func NewAccountUC(
	cfg *models.Config,
	repo account.AccountRepo,
	cache Cache,
	transactionGW account.TransactionGW,
) account.AccountUC {
	return &accountUC{
		cfg:           cfg,
		repo:          repo,
		cache:         cache,
		transactionGW: transactionGW,
	}
}

// CreateAccount opens a new account with a zero starting balance. A positive
// requested balance is applied afterwards as a regular deposit through the
// transaction service, so the opening balance shows up in the ledger like
// any other money movement. If that deposit fails the account row stays.
func (uc *accountUC) CreateAccount(ctx context.Context, req models.AccountRequest) (*models.Account, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	if req.AccountHolderName == "" {
		return nil, fmt.Errorf("%w: account holder name is required", apperrors.ErrValidation)
	}

	acc := &models.Account{
		ID:                uuid.NewString(),
		AccountNumber:     generateAccountNumber(),
		AccountName:       req.AccountName,
		AccountHolderName: req.AccountHolderName,
		Balance:           decimal.Zero,
		Currency:          req.Currency,
		UserID:            req.UserID,
		CreatedAt:         time.Now().UTC(),
	}

	if err := uc.repo.CreateAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	uc.invalidateUserCache(ctx, req.UserID)

	logger.Info("Account created",
		logger.String("account_id", acc.ID),
		logger.String("user_id", acc.UserID))

	if req.Balance.IsPositive() {
		err := uc.transactionGW.SubmitDeposit(ctx, models.TransactionRequest{
			UserID:               req.UserID,
			DestinationAccountID: acc.ID,
			Type:                 models.TransactionTypeDeposit,
			AssetCode:            req.Currency,
			Amount:               req.Balance,
		})
		if err != nil {
			return nil, fmt.Errorf("initial deposit failed: %w", err)
		}
	}

	return acc, nil
}

// GetAccountByID retrieves a single account
func (uc *accountUC) GetAccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	acc, err := uc.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return acc, nil
}

// GetAccountsForUser lists a user's accounts, serving from the redis cache
// when possible. Cache failures fall through to the database.
func (uc *accountUC) GetAccountsForUser(ctx context.Context, userID string) ([]models.Account, error) {
	key := fmt.Sprintf(constants.KeyUserAccounts, userID)

	if cached, err := uc.cache.Get(ctx, key); err == nil && cached != "" {
		var accounts []models.Account
		if err := json.Unmarshal([]byte(cached), &accounts); err == nil {
			return accounts, nil
		}
	}

	accounts, err := uc.repo.GetAccountsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if payload, err := json.Marshal(accounts); err == nil {
		if err := uc.cache.Set(ctx, key, payload, cacheTTL); err != nil {
			logger.Warn("Failed to cache account listing",
				logger.String("user_id", userID),
				logger.Err(err))
		}
	}

	return accounts, nil
}

// DebitAccount subtracts amount from the balance. The balance read and the
// update are two separate statements, matching how the service has always
// behaved under concurrent debits.
func (uc *accountUC) DebitAccount(ctx context.Context, accountID string, amount decimal.Decimal) error {
	acc, err := uc.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	if acc.Balance.LessThan(amount) {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrInsufficientFunds)
	}

	if err := uc.repo.UpdateBalance(ctx, accountID, acc.Balance.Sub(amount)); err != nil {
		return fmt.Errorf("failed to debit account: %w", err)
	}

	uc.invalidateUserCache(ctx, acc.UserID)
	return nil
}

// CreditAccount adds amount to the balance
func (uc *accountUC) CreditAccount(ctx context.Context, accountID string, amount decimal.Decimal) error {
	acc, err := uc.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	if err := uc.repo.UpdateBalance(ctx, accountID, acc.Balance.Add(amount)); err != nil {
		return fmt.Errorf("failed to credit account: %w", err)
	}

	uc.invalidateUserCache(ctx, acc.UserID)
	return nil
}

// DeleteAccount removes an account
func (uc *accountUC) DeleteAccount(ctx context.Context, accountID string) error {
	acc, err := uc.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	if err := uc.repo.DeleteAccount(ctx, accountID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	uc.invalidateUserCache(ctx, acc.UserID)
	return nil
}

func (uc *accountUC) invalidateUserCache(ctx context.Context, userID string) {
	key := fmt.Sprintf(constants.KeyUserAccounts, userID)
	if err := uc.cache.Delete(ctx, key); err != nil {
		logger.Warn("Failed to invalidate account cache",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}

// generateAccountNumber produces an IBAN-looking identifier: a country code
// followed by five random numeric groups
func generateAccountNumber() string {
	countryCode := countryCodes[rand.Intn(len(countryCodes))]
	return countryCode + fmt.Sprintf("%02d-%04d-%04d-%04d-%04d",
		rand.Intn(100),
		rand.Intn(10000),
		rand.Intn(10000),
		rand.Intn(10000),
		rand.Intn(10000))
}
