package gateway_http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	httpclient "github.com/veritasbank/veritas/internal/pkg/http"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

// TransactionClient is an HTTP client for the transaction service, used for
// the initial deposit when an account is opened with a starting balance
type TransactionClient struct {
	baseURL string
	client  *httpclient.EnhancedClient
}

// NewTransactionClient creates a new transaction HTTP client
func NewTransactionClient(baseURL string, cfg models.ClientConfig) *TransactionClient {
	return &TransactionClient{
		baseURL: baseURL,
		client: httpclient.NewEnhancedClient(httpclient.Options{
			Timeout:          time.Duration(cfg.TimeoutSeconds) * time.Second,
			MaxRetries:       cfg.MaxRetries,
			FailureThreshold: cfg.FailureThreshold,
		}),
	}
}

// SubmitDeposit submits a deposit request on behalf of the account owner
func (c *TransactionClient) SubmitDeposit(ctx context.Context, req models.TransactionRequest) error {
	reqURL := fmt.Sprintf("%s/api/transaction", c.baseURL)

	resp, err := c.client.PostJSON(ctx, reqURL, req)
	if err != nil {
		return fmt.Errorf("deposit submission failed: %w: %v", apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("deposit submission rejected: %w (status: %d)", apperrors.ErrTransport, resp.StatusCode)
	}

	return nil
}
