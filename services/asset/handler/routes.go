package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/asset"
	httpHandler "github.com/veritasbank/veritas/services/asset/handler/http"
)

// Handler combines all handlers for the asset service
type Handler struct {
	assetHTTP *httpHandler.AssetHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	assetUC asset.AssetUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		assetHTTP: httpHandler.NewAssetHandler(assetUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/asset-management")

	group.GET("", h.assetHTTP.CheckAvailability)
	group.POST("/update-amount", h.assetHTTP.UpdateAssetAmount)
	group.POST("/assets", h.assetHTTP.CreateAsset)
	group.GET("/assets", h.assetHTTP.GetAssets)
	group.GET("/assets/:id", h.assetHTTP.GetAsset)
	group.PUT("/assets/:id", h.assetHTTP.UpdateAsset)
	group.DELETE("/assets/:id", h.assetHTTP.DeleteAsset)
}
