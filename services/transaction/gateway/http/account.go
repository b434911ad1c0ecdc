package gateway_http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	"github.com/veritasbank/veritas/internal/pkg/circuitbreaker"
	httpclient "github.com/veritasbank/veritas/internal/pkg/http"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/internal/utils"
)

// AccountClient is an HTTP client for the account service
type AccountClient struct {
	baseURL string
	client  *httpclient.EnhancedClient
}

// NewAccountClient creates a new account HTTP client
func NewAccountClient(baseURL string, cfg models.ClientConfig) *AccountClient {
	return &AccountClient{
		baseURL: baseURL,
		client: httpclient.NewEnhancedClient(httpclient.Options{
			Timeout:          time.Duration(cfg.TimeoutSeconds) * time.Second,
			MaxRetries:       cfg.MaxRetries,
			FailureThreshold: cfg.FailureThreshold,
		}),
	}
}

// GetAccountByID retrieves a single account
func (c *AccountClient) GetAccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	reqURL := fmt.Sprintf("%s/api/account/%s", c.baseURL, accountID)

	resp, err := c.client.Get(ctx, reqURL)
	if err != nil {
		return nil, transportError("account lookup", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "account lookup"); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read account response: %w", err)
	}

	var account models.Account
	if err := utils.ParseJSONResponse(body, &account); err != nil {
		return nil, fmt.Errorf("failed to parse account response: %w", err)
	}

	return &account, nil
}

// GetAccountsForUser retrieves every account owned by a user
func (c *AccountClient) GetAccountsForUser(ctx context.Context, userID string) ([]models.Account, error) {
	reqURL := fmt.Sprintf("%s/api/account?userId=%s", c.baseURL, url.QueryEscape(userID))

	resp, err := c.client.Get(ctx, reqURL)
	if err != nil {
		return nil, transportError("account listing", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "account listing"); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts response: %w", err)
	}

	var accounts []models.Account
	if err := utils.ParseJSONResponse(body, &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse accounts response: %w", err)
	}

	return accounts, nil
}

// DebitAccount subtracts amount from the account balance
func (c *AccountClient) DebitAccount(ctx context.Context, accountID string, amount decimal.Decimal) error {
	return c.changeBalance(ctx, accountID, "debit", amount)
}

// CreditAccount adds amount to the account balance
func (c *AccountClient) CreditAccount(ctx context.Context, accountID string, amount decimal.Decimal) error {
	return c.changeBalance(ctx, accountID, "credit", amount)
}

func (c *AccountClient) changeBalance(ctx context.Context, accountID, direction string, amount decimal.Decimal) error {
	reqURL := fmt.Sprintf("%s/api/account/%s/%s", c.baseURL, accountID, direction)

	resp, err := c.client.PostJSON(ctx, reqURL, models.BalanceChangeRequest{Amount: amount})
	if err != nil {
		return transportError("account "+direction, err)
	}
	defer resp.Body.Close()

	return checkStatus(resp, "account "+direction)
}

// checkStatus maps the account service's business rejections onto the local
// error taxonomy
func checkStatus(resp *http.Response, operation string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", operation, apperrors.ErrNotFound)
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", operation, apperrors.ErrInsufficientFunds)
	default:
		return fmt.Errorf("%s failed: %w (status: %d)", operation, apperrors.ErrTransport, resp.StatusCode)
	}
}

// transportError wraps connection failures, exhausted retries and an open
// circuit breaker into the transport sentinel
func transportError(operation string, err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) {
		return fmt.Errorf("%s rejected, circuit open: %w", operation, apperrors.ErrTransport)
	}
	return fmt.Errorf("%s failed: %w: %v", operation, apperrors.ErrTransport, err)
}
