package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types accepted by the orchestrator
const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeTransfer   = "transfer"
)

// TransactionRequest represents the request payload for a money movement.
// UserID is resolved from the authenticated principal by the handler before
// the request reaches the orchestrator.
type TransactionRequest struct {
	UserID               string          `json:"userId"`
	SourceAccountID      string          `json:"sourceAccountId,omitempty"`
	DestinationAccountID string          `json:"destinationAccountId,omitempty"`
	Type                 string          `json:"type"`
	AssetCode            string          `json:"assetCode"`
	Amount               decimal.Decimal `json:"amount"`
}

// Transaction is one immutable ledger row per processed request
type Transaction struct {
	ID                   int64           `json:"id" db:"id"`
	TransactionID        string          `json:"transactionId" db:"transaction_id"`
	UserID               string          `json:"userId" db:"user_id"`
	SourceAccountID      string          `json:"sourceAccountId" db:"source_account_id"`
	DestinationAccountID string          `json:"destinationAccountId" db:"destination_account_id"`
	Type                 string          `json:"type" db:"type"`
	Amount               decimal.Decimal `json:"amount" db:"amount"`
	AssetCode            string          `json:"assetCode" db:"asset_code"`
	TransactionTime      time.Time       `json:"transactionTime" db:"transaction_time"`
}

// TransactionEvent is published on the notification subject once per
// successfully recorded transaction
type TransactionEvent struct {
	TransactionID        string `json:"transactionId"`
	UserID               string `json:"userId"`
	SourceAccountID      string `json:"sourceAccountId,omitempty"`
	DestinationAccountID string `json:"destinationAccountId,omitempty"`
	Type                 string `json:"type"`
	Amount               string `json:"amount"`
	AssetCode            string `json:"assetCode"`
}

// BalanceChangeRequest is the payload for account debit/credit calls
type BalanceChangeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
