package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/account/mocks"
)

func setupHandlerTest(t *testing.T) (*AccountHandler, *mocks.MockAccountUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockAccountUC(ctrl)
	return NewAccountHandler(mockUC), mockUC
}

func newJSONContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var request *http.Request
	if body != nil {
		payload, _ := json.Marshal(body)
		request = httptest.NewRequest(method, target, bytes.NewBuffer(payload))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		request = httptest.NewRequest(method, target, nil)
	}
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestCreateAccount_Success(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		Return(&models.Account{ID: "acc-1", UserID: "user-1"}, nil)

	c, recorder := newJSONContext(http.MethodPost, "/api/account", map[string]interface{}{
		"accountHolderName": "Jane Doe",
		"currency":          "EUR",
		"userId":            "user-1",
		"balance":           100,
	})

	err := handler.CreateAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "acc-1")
}

func TestCreateAccount_UserIDFromToken(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req models.AccountRequest) (*models.Account, error) {
			assert.Equal(t, "token-user", req.UserID)
			return &models.Account{ID: "acc-1", UserID: "token-user"}, nil
		})

	c, recorder := newJSONContext(http.MethodPost, "/api/account", map[string]interface{}{
		"accountHolderName": "Jane Doe",
	})
	c.Set("user_id", "token-user")

	err := handler.CreateAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestCreateAccount_ValidationError(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation))

	c, recorder := newJSONContext(http.MethodPost, "/api/account", map[string]interface{}{})

	err := handler.CreateAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetAccount_NotFound(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		GetAccountByID(gomock.Any(), "missing").
		Return(nil, fmt.Errorf("account missing: %w", apperrors.ErrNotFound))

	c, recorder := newJSONContext(http.MethodGet, "/api/account/missing", nil)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.GetAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetAccounts_ByQueryParam(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		GetAccountsForUser(gomock.Any(), "user-1").
		Return([]models.Account{{ID: "acc-1", UserID: "user-1"}}, nil)

	c, recorder := newJSONContext(http.MethodGet, "/api/account?userId=user-1", nil)

	err := handler.GetAccounts(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "acc-1")
}

func TestGetAccounts_MissingUser(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	c, recorder := newJSONContext(http.MethodGet, "/api/account", nil)

	err := handler.GetAccounts(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDebitAccount_Success(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		DebitAccount(gomock.Any(), "acc-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, amount decimal.Decimal) error {
			assert.True(t, amount.Equal(decimal.NewFromInt(40)))
			return nil
		})

	c, recorder := newJSONContext(http.MethodPost, "/api/account/acc-1/debit", map[string]interface{}{
		"amount": 40,
	})
	c.SetParamNames("id")
	c.SetParamValues("acc-1")

	err := handler.DebitAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDebitAccount_InsufficientFunds(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		DebitAccount(gomock.Any(), "acc-1", gomock.Any()).
		Return(fmt.Errorf("account acc-1: %w", apperrors.ErrInsufficientFunds))

	c, recorder := newJSONContext(http.MethodPost, "/api/account/acc-1/debit", map[string]interface{}{
		"amount": 5000,
	})
	c.SetParamNames("id")
	c.SetParamValues("acc-1")

	err := handler.DebitAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestDebitAccount_NonPositiveAmount(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	c, recorder := newJSONContext(http.MethodPost, "/api/account/acc-1/debit", map[string]interface{}{
		"amount": -5,
	})
	c.SetParamNames("id")
	c.SetParamValues("acc-1")

	err := handler.DebitAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreditAccount_Success(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		CreditAccount(gomock.Any(), "acc-1", gomock.Any()).
		Return(nil)

	c, recorder := newJSONContext(http.MethodPost, "/api/account/acc-1/credit", map[string]interface{}{
		"amount": 25,
	})
	c.SetParamNames("id")
	c.SetParamValues("acc-1")

	err := handler.CreditAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDeleteAccount_Success(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().DeleteAccount(gomock.Any(), "acc-1").Return(nil)

	c, recorder := newJSONContext(http.MethodDelete, "/api/account/acc-1", nil)
	c.SetParamNames("id")
	c.SetParamValues("acc-1")

	err := handler.DeleteAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
