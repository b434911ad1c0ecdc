package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/transaction/mocks"
	"github.com/veritasbank/veritas/services/transaction/usecase"
)

func setupHandlerTest(t *testing.T) (*TransactionHandler, *mocks.MockTransactionUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockTransactionUC(ctrl)
	return NewTransactionHandler(mockUC), mockUC
}

func postTransaction(body interface{}, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	payload, _ := json.Marshal(body)
	request := httptest.NewRequest(http.MethodPost, "/api/transaction", bytes.NewBuffer(payload))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, recorder
}

func TestProcessTransaction_Success(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		ProcessTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req models.TransactionRequest) (string, error) {
			assert.Equal(t, "user-1", req.UserID)
			assert.Equal(t, "deposit", req.Type)
			assert.True(t, req.Amount.Equal(decimal.NewFromInt(10)))
			return usecase.SuccessMessage, nil
		})

	c, recorder := postTransaction(map[string]interface{}{
		"userId":               "user-1",
		"destinationAccountId": "acc-1",
		"type":                 "deposit",
		"assetCode":            "GOLD",
		"amount":               10,
	}, "")

	err := handler.ProcessTransaction(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), usecase.SuccessMessage)
}

func TestProcessTransaction_UserIDFromToken(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		ProcessTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req models.TransactionRequest) (string, error) {
			// No userId in the body, so the bearer token identity is used
			assert.Equal(t, "token-user", req.UserID)
			return usecase.SuccessMessage, nil
		})

	c, recorder := postTransaction(map[string]interface{}{
		"destinationAccountId": "acc-1",
		"type":                 "deposit",
		"assetCode":            "GOLD",
		"amount":               10,
	}, "token-user")

	err := handler.ProcessTransaction(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestProcessTransaction_ErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectBody   string
	}{
		{
			name:         "validation error",
			err:          fmt.Errorf("%w: asset code is required", apperrors.ErrValidation),
			expectStatus: http.StatusBadRequest,
			expectBody:   "asset code is required",
		},
		{
			name:         "invalid type",
			err:          fmt.Errorf("%w: loan", apperrors.ErrInvalidType),
			expectStatus: http.StatusBadRequest,
			expectBody:   "loan",
		},
		{
			name:         "ownership",
			err:          fmt.Errorf("%w: source account acc-1", apperrors.ErrOwnership),
			expectStatus: http.StatusForbidden,
			expectBody:   "does not belong",
		},
		{
			name:         "not found",
			err:          fmt.Errorf("inventory update: %w", apperrors.ErrNotFound),
			expectStatus: http.StatusNotFound,
			expectBody:   "not found",
		},
		{
			name:         "asset unavailable",
			err:          apperrors.ErrAssetUnavailable,
			expectStatus: http.StatusUnprocessableEntity,
			expectBody:   "not available",
		},
		{
			name:         "insufficient funds",
			err:          fmt.Errorf("account debit: %w", apperrors.ErrInsufficientFunds),
			expectStatus: http.StatusUnprocessableEntity,
			expectBody:   "insufficient",
		},
		{
			name:         "downstream unreachable",
			err:          fmt.Errorf("account lookup failed: %w", apperrors.ErrTransport),
			expectStatus: http.StatusServiceUnavailable,
			expectBody:   FallbackMessage,
		},
		{
			name:         "unexpected failure",
			err:          assert.AnError,
			expectStatus: http.StatusInternalServerError,
			expectBody:   FallbackMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockUC := setupHandlerTest(t)

			mockUC.EXPECT().
				ProcessTransaction(gomock.Any(), gomock.Any()).
				Return("", tt.err)

			c, recorder := postTransaction(map[string]interface{}{
				"userId":    "user-1",
				"type":      "withdrawal",
				"assetCode": "GOLD",
				"amount":    10,
			}, "")

			err := handler.ProcessTransaction(c)

			require.NoError(t, err)
			assert.Equal(t, tt.expectStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.expectBody)
		})
	}
}

func TestProcessTransaction_InvalidBody(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/api/transaction", bytes.NewBufferString("{not json"))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.ProcessTransaction(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetTransactions_Success(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		GetTransactionsForUser(gomock.Any(), "user-1").
		Return([]models.Transaction{
			{TransactionID: "t1", UserID: "user-1", TransactionTime: time.Now().UTC()},
		}, nil)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.Set("user_id", "user-1")

	err := handler.GetTransactions(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "t1")
}

func TestGetTransactions_AnonymousGetsEmptyList(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.GetTransactions(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Success bool                 `json:"success"`
		Data    []models.Transaction `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Empty(t, response.Data)
}
