package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	"github.com/veritasbank/veritas/internal/pkg/logger"
	"github.com/veritasbank/veritas/internal/pkg/middleware"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/internal/utils"
	"github.com/veritasbank/veritas/services/account"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountUC account.AccountUC
}

// NewAccountHandler creates a new account HTTP handler
func NewAccountHandler(accountUC account.AccountUC) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
	}
}

// CreateAccount opens a new account
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req models.AccountRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.UserID == "" {
		req.UserID = middleware.UserIDFromContext(c)
	}

	acc, err := h.accountUC.CreateAccount(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", acc)
}

// GetAccount retrieves a single account by id
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID := c.Param("id")
	if accountID == "" {
		return utils.BadRequestResponse(c, "Account ID is required")
	}

	acc, err := h.accountUC.GetAccountByID(c.Request().Context(), accountID)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", acc)
}

// GetAccounts lists accounts for the user given by the query parameter or,
// failing that, the bearer token
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		userID = middleware.UserIDFromContext(c)
	}
	if userID == "" {
		return utils.BadRequestResponse(c, "User ID is required")
	}

	accounts, err := h.accountUC.GetAccountsForUser(c.Request().Context(), userID)
	if err != nil {
		return h.mapError(c, err)
	}

	if accounts == nil {
		accounts = []models.Account{}
	}

	return utils.SuccessResponse(c, http.StatusOK, "", accounts)
}

// DebitAccount subtracts from the account balance
func (h *AccountHandler) DebitAccount(c echo.Context) error {
	return h.changeBalance(c, h.accountUC.DebitAccount)
}

// CreditAccount adds to the account balance
func (h *AccountHandler) CreditAccount(c echo.Context) error {
	return h.changeBalance(c, h.accountUC.CreditAccount)
}

func (h *AccountHandler) changeBalance(c echo.Context, apply func(ctx context.Context, accountID string, amount decimal.Decimal) error) error {
	accountID := c.Param("id")
	if accountID == "" {
		return utils.BadRequestResponse(c, "Account ID is required")
	}

	var req models.BalanceChangeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if !req.Amount.IsPositive() {
		return utils.BadRequestResponse(c, "Amount must be positive")
	}

	if err := apply(c.Request().Context(), accountID, req.Amount); err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance updated", nil)
}

// DeleteAccount removes an account
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	accountID := c.Param("id")
	if accountID == "" {
		return utils.BadRequestResponse(c, "Account ID is required")
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), accountID); err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account deleted", nil)
}

func (h *AccountHandler) mapError(c echo.Context, err error) error {
	logger.Error("Account operation failed", logger.ErrorField(err))

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrTransport):
		return utils.ServiceUnavailableResponse(c, "Downstream service unavailable")
	default:
		return utils.InternalServerErrorResponse(c, "Account operation failed")
	}
}
