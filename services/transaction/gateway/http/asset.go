package gateway_http

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	httpclient "github.com/veritasbank/veritas/internal/pkg/http"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/internal/utils"
)

// AssetClient is an HTTP client for the asset management service
type AssetClient struct {
	baseURL string
	client  *httpclient.EnhancedClient
}

// NewAssetClient creates a new asset HTTP client
func NewAssetClient(baseURL string, cfg models.ClientConfig) *AssetClient {
	return &AssetClient{
		baseURL: baseURL,
		client: httpclient.NewEnhancedClient(httpclient.Options{
			Timeout:          time.Duration(cfg.TimeoutSeconds) * time.Second,
			MaxRetries:       cfg.MaxRetries,
			FailureThreshold: cfg.FailureThreshold,
		}),
	}
}

// CheckAssetAvailability asks the asset service whether each requested
// amount is on hand. Codes the inventory does not know are absent from the
// response rather than reported unavailable.
func (c *AssetClient) CheckAssetAvailability(ctx context.Context, assetCodes []string, amounts []int) ([]models.AssetAvailability, error) {
	params := url.Values{}
	for _, code := range assetCodes {
		params.Add("assetCode", code)
	}
	for _, amount := range amounts {
		params.Add("amount", strconv.Itoa(amount))
	}

	reqURL := fmt.Sprintf("%s/api/asset-management?%s", c.baseURL, params.Encode())

	resp, err := c.client.Get(ctx, reqURL)
	if err != nil {
		return nil, transportError("availability check", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "availability check"); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read availability response: %w", err)
	}

	var availability []models.AssetAvailability
	if err := utils.ParseJSONResponse(body, &availability); err != nil {
		return nil, fmt.Errorf("failed to parse availability response: %w", err)
	}

	return availability, nil
}

// UpdateAssetAmount adjusts the on-hand quantity of an asset. A positive
// amount replenishes inventory and a negative amount consumes it.
func (c *AssetClient) UpdateAssetAmount(ctx context.Context, assetCode string, amount int) error {
	reqURL := fmt.Sprintf("%s/api/asset-management/update-amount?assetCode=%s&amount=%d",
		c.baseURL, url.QueryEscape(assetCode), amount)

	resp, err := c.client.Post(ctx, reqURL)
	if err != nil {
		return transportError("inventory update", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp, "inventory update")
}
