package gateway_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

func testClientConfig() models.ClientConfig {
	return models.ClientConfig{
		TimeoutSeconds:   2,
		MaxRetries:       1,
		FailureThreshold: 10,
	}
}

func TestAccountClient_GetAccountByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/account/acc-1", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    models.Account{ID: "acc-1", UserID: "user-1"},
		})
	}))
	defer server.Close()

	client := NewAccountClient(server.URL, testClientConfig())

	account, err := client.GetAccountByID(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", account.ID)
	assert.Equal(t, "user-1", account.UserID)
}

func TestAccountClient_GetAccountByID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewAccountClient(server.URL, testClientConfig())

	_, err := client.GetAccountByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAccountClient_GetAccountByID_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewAccountClient(server.URL, testClientConfig())

	_, err := client.GetAccountByID(context.Background(), "acc-1")
	assert.ErrorIs(t, err, apperrors.ErrTransport)
}
