// Package apperrors defines the error taxonomy shared by all services.
// Call sites wrap these sentinels with fmt.Errorf("...: %w", err) so
// handlers can map them to HTTP statuses with errors.Is.
package apperrors

import "errors"

var (
	// ErrValidation covers missing/invalid request fields, raised before
	// any side effect is performed
	ErrValidation = errors.New("validation failed")

	// ErrAssetUnavailable means the inventory gate rejected the request
	ErrAssetUnavailable = errors.New("asset is not available in the requested amount, please try again later")

	// ErrOwnership means the referenced account does not belong to the
	// requesting user
	ErrOwnership = errors.New("account does not belong to the user")

	// ErrInsufficientFunds means a debit exceeds the account balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotFound means an account or asset is unknown
	ErrNotFound = errors.New("not found")

	// ErrInvalidType means the transaction type is not recognized
	ErrInvalidType = errors.New("invalid transaction type")

	// ErrTransport means a downstream call failed after the retry and
	// circuit breaker policy was exhausted
	ErrTransport = errors.New("downstream service unavailable")
)
