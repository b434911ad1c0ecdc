package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappedSentinelsAreMatchable(t *testing.T) {
	wrapped := fmt.Errorf("debit account acc-1: %w", ErrInsufficientFunds)

	assert.True(t, errors.Is(wrapped, ErrInsufficientFunds))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "insufficient funds")
}
