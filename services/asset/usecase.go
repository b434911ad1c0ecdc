package asset

import (
	"context"

	"github.com/veritasbank/veritas/internal/pkg/models"
)

// AssetUC defines the interface for asset inventory business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/veritasbank/veritas/services/asset AssetUC
type AssetUC interface {
	CheckAvailability(ctx context.Context, assetCodes []string, amounts []int) ([]models.AssetAvailability, error)
	UpdateAssetAmount(ctx context.Context, assetCode string, amount int) error
	CreateAsset(ctx context.Context, asset *models.Asset) error
	GetAssetByID(ctx context.Context, id int64) (*models.Asset, error)
	GetAllAssets(ctx context.Context) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, id int64, asset *models.Asset) (*models.Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
}
