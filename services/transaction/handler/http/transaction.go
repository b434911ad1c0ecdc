package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	"github.com/veritasbank/veritas/internal/pkg/logger"
	"github.com/veritasbank/veritas/internal/pkg/middleware"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/internal/utils"
	"github.com/veritasbank/veritas/services/transaction"
)

// FallbackMessage is what callers see when a downstream service is out of
// reach and the real cause must stay internal
const FallbackMessage = "Oops! Something went wrong, please try again later!"

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC transaction.TransactionUC
}

// NewTransactionHandler creates a new transaction HTTP handler
func NewTransactionHandler(transactionUC transaction.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// ProcessTransaction handles the submission of one money movement
func (h *TransactionHandler) ProcessTransaction(c echo.Context) error {
	var req models.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	// A user id in the body wins; otherwise fall back to the bearer token
	if req.UserID == "" {
		req.UserID = middleware.UserIDFromContext(c)
	}

	logger.Info("Received transaction request",
		logger.String("user_id", req.UserID),
		logger.String("type", req.Type),
		logger.String("asset_code", req.AssetCode))

	message, err := h.transactionUC.ProcessTransaction(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, req, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, message, nil)
}

// GetTransactions lists the transactions visible to the authenticated user
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		// An anonymous caller owns nothing, so the list is empty rather
		// than an error
		return utils.SuccessResponse(c, http.StatusOK, "", []models.Transaction{})
	}

	transactions, err := h.transactionUC.GetTransactionsForUser(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list transactions",
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to retrieve transactions")
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	return utils.SuccessResponse(c, http.StatusOK, "", transactions)
}

func (h *TransactionHandler) mapError(c echo.Context, req models.TransactionRequest, err error) error {
	logger.Error("Transaction failed",
		logger.String("user_id", req.UserID),
		logger.String("type", req.Type),
		logger.ErrorField(err))

	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidType):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrOwnership):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrAssetUnavailable), errors.Is(err, apperrors.ErrInsufficientFunds):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrTransport):
		return utils.ServiceUnavailableResponse(c, FallbackMessage)
	default:
		return utils.InternalServerErrorResponse(c, FallbackMessage)
	}
}
