package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	"github.com/veritasbank/veritas/internal/pkg/logger"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/internal/utils"
	"github.com/veritasbank/veritas/services/asset"
)

// AssetHandler handles HTTP requests for asset inventory operations
type AssetHandler struct {
	assetUC asset.AssetUC
}

// NewAssetHandler creates a new asset HTTP handler
func NewAssetHandler(assetUC asset.AssetUC) *AssetHandler {
	return &AssetHandler{
		assetUC: assetUC,
	}
}

// CheckAvailability answers an availability query. The assetCode and amount
// query parameters repeat and are matched by position.
func (h *AssetHandler) CheckAvailability(c echo.Context) error {
	assetCodes := c.QueryParams()["assetCode"]
	if len(assetCodes) == 0 {
		return utils.BadRequestResponse(c, "At least one assetCode is required")
	}

	rawAmounts := c.QueryParams()["amount"]
	amounts := make([]int, 0, len(rawAmounts))
	for _, raw := range rawAmounts {
		amount, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid amount: "+raw)
		}
		amounts = append(amounts, amount)
	}

	availability, err := h.assetUC.CheckAvailability(c.Request().Context(), assetCodes, amounts)
	if err != nil {
		return h.mapError(c, err)
	}

	if availability == nil {
		availability = []models.AssetAvailability{}
	}

	return utils.SuccessResponse(c, http.StatusOK, "", availability)
}

// UpdateAssetAmount adjusts the on-hand value of one asset
func (h *AssetHandler) UpdateAssetAmount(c echo.Context) error {
	assetCode := c.QueryParam("assetCode")
	if assetCode == "" {
		return utils.BadRequestResponse(c, "assetCode is required")
	}

	amount, err := strconv.Atoi(c.QueryParam("amount"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid amount: "+c.QueryParam("amount"))
	}

	if err := h.assetUC.UpdateAssetAmount(c.Request().Context(), assetCode, amount); err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Asset amount updated", nil)
}

// CreateAsset registers a new asset
func (h *AssetHandler) CreateAsset(c echo.Context) error {
	var req models.Asset
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.assetUC.CreateAsset(c.Request().Context(), &req); err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Asset created", req)
}

// GetAsset retrieves one asset by id
func (h *AssetHandler) GetAsset(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid asset id")
	}

	a, err := h.assetUC.GetAssetByID(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", a)
}

// GetAssets lists the full inventory
func (h *AssetHandler) GetAssets(c echo.Context) error {
	assets, err := h.assetUC.GetAllAssets(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}

	if assets == nil {
		assets = []models.Asset{}
	}

	return utils.SuccessResponse(c, http.StatusOK, "", assets)
}

// UpdateAsset overwrites an asset by id
func (h *AssetHandler) UpdateAsset(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid asset id")
	}

	var req models.Asset
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.assetUC.UpdateAsset(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Asset updated", updated)
}

// DeleteAsset removes an asset by id
func (h *AssetHandler) DeleteAsset(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid asset id")
	}

	if err := h.assetUC.DeleteAsset(c.Request().Context(), id); err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Asset deleted", nil)
}

func (h *AssetHandler) mapError(c echo.Context, err error) error {
	logger.Error("Asset operation failed", logger.ErrorField(err))

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "Asset operation failed")
	}
}
