package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errDownstream = errors.New("connection refused")

func testConfig() Config {
	return Config{
		Name:             "account-service",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 3,
		SuccessThreshold: 1,
	}
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := cb.Execute(ctx, func(context.Context) error { return errDownstream })
		assert.ErrorIs(t, err, errDownstream)
	}

	assert.Equal(t, StateOpen, cb.State())

	err := cb.Execute(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := New(testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = cb.Execute(ctx, func(context.Context) error { return errDownstream })
	}
	assert.Equal(t, StateOpen, cb.State())

	// Wait for open timeout so the next request probes half-open
	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(ctx, func(context.Context) error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_IsFailurePredicate(t *testing.T) {
	cfg := testConfig()
	cfg.IsFailure = func(err error) bool {
		// Business rejections do not count against the breaker
		return err != nil && !errors.Is(err, errBusiness)
	}
	cb := New(cfg)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_ = cb.Execute(ctx, func(context.Context) error { return errBusiness })
	}

	assert.Equal(t, StateClosed, cb.State())
}

var errBusiness = errors.New("insufficient funds")

func TestManager_ReusesBreakerPerName(t *testing.T) {
	m := NewManager()

	cb1 := m.GetOrCreate("account-service", DefaultConfig("account-service"))
	cb2 := m.GetOrCreate("account-service", DefaultConfig("account-service"))

	assert.Same(t, cb1, cb2)
}
