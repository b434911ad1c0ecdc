package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/veritasbank/veritas/internal/pkg/circuitbreaker"
	"github.com/veritasbank/veritas/internal/pkg/retry"
)

// HTTPError represents a failed HTTP exchange
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// EnhancedClient wraps http.Client with retry and circuit breaker protection
// for outbound service-to-service calls. Responses with a 5xx status are
// treated as failures and retried; 4xx responses are returned to the caller
// untouched so business rejections are neither retried nor counted against
// the breaker.
type EnhancedClient struct {
	client         *http.Client
	retrier        *retry.Retrier
	circuitManager *circuitbreaker.Manager
	breakerConfig  circuitbreaker.Config
}

// Options tunes the enhanced client
type Options struct {
	Timeout          time.Duration
	MaxRetries       int
	FailureThreshold int
}

// NewEnhancedClient creates a new enhanced HTTP client
func NewEnhancedClient(opts Options) *EnhancedClient {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}

	retryConfig := retry.DefaultConfig()
	if opts.MaxRetries > 0 {
		retryConfig.MaxRetries = opts.MaxRetries
	}

	breakerConfig := circuitbreaker.DefaultConfig("")
	if opts.FailureThreshold > 0 {
		breakerConfig.FailureThreshold = uint32(opts.FailureThreshold)
	}

	return &EnhancedClient{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		retrier:        retry.New(retryConfig),
		circuitManager: circuitbreaker.NewManager(),
		breakerConfig:  breakerConfig,
	}
}

// Get performs a GET request with enhanced features
func (c *EnhancedClient) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	return c.execute(ctx, http.MethodGet, rawURL, nil)
}

// Post performs a POST request without a body
func (c *EnhancedClient) Post(ctx context.Context, rawURL string) (*http.Response, error) {
	return c.execute(ctx, http.MethodPost, rawURL, nil)
}

// PostJSON marshals body and performs a POST request with enhanced features
func (c *EnhancedClient) PostJSON(ctx context.Context, rawURL string, body interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.execute(ctx, http.MethodPost, rawURL, payload)
}

// execute runs the request under the per-host circuit breaker and the retry
// policy, rebuilding the request body for every attempt
func (c *EnhancedClient) execute(ctx context.Context, method, rawURL string, payload []byte) (*http.Response, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid request url: %w", err)
	}

	serviceName := parsed.Host
	if serviceName == "" {
		serviceName = "unknown"
	}

	var resp *http.Response

	err = c.circuitManager.Execute(ctx, serviceName, c.breakerConfig, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			var body *bytes.Reader
			if payload != nil {
				body = bytes.NewReader(payload)
			} else {
				body = bytes.NewReader(nil)
			}

			req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
			if err != nil {
				return err
			}
			if payload != nil {
				req.Header.Set("Content-Type", "application/json")
			}

			resp, err = c.client.Do(req)
			if err != nil {
				return err
			}

			// 5xx status codes count as failures and are retried
			if resp.StatusCode >= 500 {
				resp.Body.Close()
				return &HTTPError{
					StatusCode: resp.StatusCode,
					Message:    "server error",
				}
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
