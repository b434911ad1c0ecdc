package asset

import (
	"context"

	"github.com/veritasbank/veritas/internal/pkg/models"
)

// AssetRepo defines the interface for asset persistence
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/veritasbank/veritas/services/asset AssetRepo
type AssetRepo interface {
	GetAssetsByCodes(ctx context.Context, assetCodes []string) ([]models.Asset, error)
	CreateAsset(ctx context.Context, asset *models.Asset) error
	GetAssetByID(ctx context.Context, id int64) (*models.Asset, error)
	GetAllAssets(ctx context.Context) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, asset *models.Asset) error
	DeleteAsset(ctx context.Context, id int64) error
}
