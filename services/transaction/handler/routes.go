package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/veritasbank/veritas/internal/pkg/middleware"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/transaction"
	httpHandler "github.com/veritasbank/veritas/services/transaction/handler/http"
)

// Handler combines all handlers for the transaction service
type Handler struct {
	transactionHTTP *httpHandler.TransactionHandler
	cfg             *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	transactionUC transaction.TransactionUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		transactionHTTP: httpHandler.NewTransactionHandler(transactionUC),
		cfg:             cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/transaction", middleware.OptionalJWTMiddleware(h.cfg.JWT))

	group.POST("", h.transactionHTTP.ProcessTransaction)
	group.GET("", h.transactionHTTP.GetTransactions)
}
