package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account owned by a single user
type Account struct {
	ID                string          `json:"id" db:"id"`
	AccountNumber     string          `json:"accountNumber" db:"account_number"`
	AccountName       string          `json:"accountName" db:"account_name"`
	AccountHolderName string          `json:"accountHolderName" db:"account_holder_name"`
	Balance           decimal.Decimal `json:"balance" db:"balance"`
	Currency          string          `json:"currency" db:"currency"`
	UserID            string          `json:"userId" db:"user_id"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
}

// AccountRequest represents the payload for creating an account.
// A positive Balance triggers an initial deposit through the
// transaction service after the account row exists.
type AccountRequest struct {
	AccountName       string          `json:"accountName"`
	AccountHolderName string          `json:"accountHolderName"`
	Balance           decimal.Decimal `json:"balance"`
	Currency          string          `json:"currency"`
	UserID            string          `json:"userId"`
}
