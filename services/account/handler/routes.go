package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/veritasbank/veritas/internal/pkg/middleware"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/account"
	httpHandler "github.com/veritasbank/veritas/services/account/handler/http"
)

// Handler combines all handlers for the account service
type Handler struct {
	accountHTTP *httpHandler.AccountHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	accountUC account.AccountUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		accountHTTP: httpHandler.NewAccountHandler(accountUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/account", middleware.OptionalJWTMiddleware(h.cfg.JWT))

	group.POST("", h.accountHTTP.CreateAccount)
	group.GET("", h.accountHTTP.GetAccounts)
	group.GET("/:id", h.accountHTTP.GetAccount)
	group.POST("/:id/debit", h.accountHTTP.DebitAccount)
	group.POST("/:id/credit", h.accountHTTP.CreditAccount)
	group.DELETE("/:id", h.accountHTTP.DeleteAccount)
}
