package gateway_http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	httpclient "github.com/veritasbank/veritas/internal/pkg/http"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/internal/utils"
)

// AccountClient is an HTTP client for the account service, used to resolve
// the owner of a destination account
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
		return nil, fmt.Errorf("account lookup failed: %w: %v", apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("account lookup rejected: %w (status: %d)", apperrors.ErrTransport, resp.StatusCode)
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
