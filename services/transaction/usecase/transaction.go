package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	"github.com/veritasbank/veritas/internal/pkg/logger"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/transaction"
)

// SuccessMessage is returned to the caller once the full pipeline completes
const SuccessMessage = "Transaction completed successfully!"

// transactionUC orchestrates one money movement per request: validation,
// availability gate, ownership gate, account mutations, ledger write, cache
// invalidation and event publish, strictly in that order. There is no
// compensation for partially applied mutations and no idempotency; callers
// needing dedup must handle it upstream.
type transactionUC struct {
	cfg       *models.Config
	repo      transaction.TransactionRepo
	accountGW transaction.AccountGW
	assetGW   transaction.AssetGW
	eventGW   transaction.EventGW
	cache     *AvailabilityCache
}

// NewTransactionUC creates a new transaction use case
func NewTransactionUC(
	cfg *models.Config,
	repo transaction.TransactionRepo,
	accountGW transaction.AccountGW,
	assetGW transaction.AssetGW,
	eventGW transaction.EventGW,
) transaction.TransactionUC {
	return &transactionUC{
		cfg:       cfg,
		repo:      repo,
		accountGW: accountGW,
		assetGW:   assetGW,
		eventGW:   eventGW,
		cache:     NewAvailabilityCache(),
	}
}

// ProcessTransaction hands the request to its own unit of work so the caller
// can stop waiting when its context expires while the pipeline runs to
// completion in the background.
func (uc *transactionUC) ProcessTransaction(ctx context.Context, req models.TransactionRequest) (string, error) {
	type result struct {
		message string
		err     error
	}

	resultCh := make(chan result, 1)

	go func() {
		message, err := uc.processTransaction(context.WithoutCancel(ctx), req)
		resultCh <- result{message: message, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resultCh:
		return res.message, res.err
	}
}

func (uc *transactionUC) processTransaction(ctx context.Context, req models.TransactionRequest) (string, error) {
	// Input validation, before any side effect
	if req.AssetCode == "" {
		return "", fmt.Errorf("%w: asset code is required", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return "", fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	// Availability gate, memoized per exact query
	available, err := uc.checkAssetAvailability(ctx, req.AssetCode, req.Amount.IntPart())
	if err != nil {
		return "", fmt.Errorf("availability check failed: %w", err)
	}
	if !available {
		return "", apperrors.ErrAssetUnavailable
	}

	if req.Type == "" {
		return "", fmt.Errorf("%w: transaction type is required", apperrors.ErrValidation)
	}

	if err := uc.applyMutations(ctx, req); err != nil {
		return "", err
	}

	txn := &models.Transaction{
		TransactionID:        uuid.NewString(),
		UserID:               req.UserID,
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		Type:                 req.Type,
		Amount:               req.Amount,
		AssetCode:            req.AssetCode,
		TransactionTime:      time.Now().UTC(),
	}

	if err := uc.repo.CreateTransaction(ctx, txn); err != nil {
		return "", fmt.Errorf("failed to record transaction: %w", err)
	}

	// Inventory changed, so every memoized availability answer is stale
	uc.cache.InvalidateAll()

	event := models.TransactionEvent{
		TransactionID:        txn.TransactionID,
		UserID:               txn.UserID,
		SourceAccountID:      txn.SourceAccountID,
		DestinationAccountID: txn.DestinationAccountID,
		Type:                 txn.Type,
		Amount:               txn.Amount.String(),
		AssetCode:            txn.AssetCode,
	}

	// Publish failure does not fail the request: the ledger row is already
	// committed and the event channel offers no acknowledgment we consume
	if err := uc.eventGW.PublishTransactionEvent(ctx, event); err != nil {
		logger.Error("Failed to publish transaction event",
			logger.String("transaction_id", txn.TransactionID),
			logger.Err(err))
	}

	return SuccessMessage, nil
}

// applyMutations dispatches the account and inventory writes by transaction
// type. For transfers debit strictly precedes credit; a credit failure after
// a successful debit leaves the debit applied.
func (uc *transactionUC) applyMutations(ctx context.Context, req models.TransactionRequest) error {
	amount := int(req.Amount.IntPart())

	switch strings.ToLower(req.Type) {
	case models.TransactionTypeDeposit:
		if req.DestinationAccountID != "" {
			if err := uc.checkOwnership(ctx, req.DestinationAccountID, req.UserID, "destination"); err != nil {
				return err
			}
		}
		if err := uc.accountGW.CreditAccount(ctx, req.DestinationAccountID, req.Amount); err != nil {
			return err
		}
		return uc.assetGW.UpdateAssetAmount(ctx, req.AssetCode, amount)

	case models.TransactionTypeWithdrawal:
		if req.SourceAccountID != "" {
			if err := uc.checkOwnership(ctx, req.SourceAccountID, req.UserID, "source"); err != nil {
				return err
			}
		}
		if err := uc.accountGW.DebitAccount(ctx, req.SourceAccountID, req.Amount); err != nil {
			return err
		}
		return uc.assetGW.UpdateAssetAmount(ctx, req.AssetCode, -amount)

	case models.TransactionTypeTransfer:
		// Destination ownership is intentionally not checked: a transfer
		// may target another user's account
		if req.SourceAccountID != "" {
			if err := uc.checkOwnership(ctx, req.SourceAccountID, req.UserID, "source"); err != nil {
				return err
			}
		}
		if err := uc.accountGW.DebitAccount(ctx, req.SourceAccountID, req.Amount); err != nil {
			return err
		}
		return uc.accountGW.CreditAccount(ctx, req.DestinationAccountID, req.Amount)

	default:
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidType, req.Type)
	}
}

func (uc *transactionUC) checkOwnership(ctx context.Context, accountID, userID, role string) error {
	account, err := uc.accountGW.GetAccountByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to resolve %s account: %w", role, err)
	}
	if account == nil || account.UserID != userID {
		return fmt.Errorf("%w: %s account %s", apperrors.ErrOwnership, role, accountID)
	}
	return nil
}

// checkAssetAvailability consults the memoized cache first and falls back to
// the asset service. A code the inventory does not know produces no answer,
// which the all-match below treats as available; the later inventory update
// then fails with a not-found. This mirrors how the availability endpoint has
// always behaved and is relied on by transfer requests, which never touch
// inventory.
func (uc *transactionUC) checkAssetAvailability(ctx context.Context, assetCode string, amount int64) (bool, error) {
	codes := []string{assetCode}
	amounts := []int{int(amount)}

	result, ok := uc.cache.Get(codes, amounts)
	if !ok {
		var err error
		result, err = uc.assetGW.CheckAssetAvailability(ctx, codes, amounts)
		if err != nil {
			return false, err
		}
		uc.cache.Put(codes, amounts, result)
	}

	for _, entry := range result {
		if !entry.AssetAvailable {
			return false, nil
		}
	}
	return true, nil
}

// GetTransactionsForUser returns the transactions the user initiated plus
// those touching any account they own, newest first
func (uc *transactionUC) GetTransactionsForUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	direct, err := uc.repo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for user: %w", err)
	}

	accounts, err := uc.accountGW.GetAccountsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for user: %w", err)
	}

	var related []models.Transaction
	if len(accounts) > 0 {
		accountIDs := make([]string, 0, len(accounts))
		for _, account := range accounts {
			accountIDs = append(accountIDs, account.ID)
		}

		related, err = uc.repo.GetTransactionsByAccountIDs(ctx, accountIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load account transactions: %w", err)
		}
	}

	// Dedup by transaction id, first occurrence wins
	seen := make(map[string]struct{}, len(direct)+len(related))
	merged := make([]models.Transaction, 0, len(direct)+len(related))
	for _, txn := range append(direct, related...) {
		if _, ok := seen[txn.TransactionID]; ok {
			continue
		}
		seen[txn.TransactionID] = struct{}{}
		merged = append(merged, txn)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].TransactionTime.After(merged[j].TransactionTime)
	})

	return merged, nil
}
