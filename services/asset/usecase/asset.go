package usecase

import (
	"context"
	"fmt"

	"github.com/veritasbank/veritas/internal/pkg/apperrors"
	"github.com/veritasbank/veritas/internal/pkg/logger"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/asset"
)

// assetUC implements asset inventory management
type assetUC struct {
	cfg  *models.Config
	repo asset.AssetRepo
}

// NewAssetUC creates a new asset use case
func NewAssetUC(cfg *models.Config, repo asset.AssetRepo) asset.AssetUC {
	return &assetUC{
		cfg:  cfg,
		repo: repo,
	}
}

// CheckAvailability reports, per known asset code, whether the on-hand value
// covers the requested amount. The answer list only contains codes the store
// knows about: an unknown code contributes nothing, which callers doing an
// all-match read as available.
func (uc *assetUC) CheckAvailability(ctx context.Context, assetCodes []string, amounts []int) ([]models.AssetAvailability, error) {
	logger.Info("Checking asset availability", logger.Strings("asset_codes", assetCodes))

	assets, err := uc.repo.GetAssetsByCodes(ctx, assetCodes)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}

	result := make([]models.AssetAvailability, 0, len(assets))
	for _, a := range assets {
		requested := 1
		for i, code := range assetCodes {
			if code == a.AssetCode && i < len(amounts) {
				requested = amounts[i]
				break
			}
		}

		result = append(result, models.AssetAvailability{
			AssetCode:      a.AssetCode,
			AssetAvailable: a.Value >= requested,
		})
	}

	return result, nil
}

// UpdateAssetAmount adds amount to the asset's on-hand value. The amount may
// be negative and the resulting value is not floored at zero.
func (uc *assetUC) UpdateAssetAmount(ctx context.Context, assetCode string, amount int) error {
	assets, err := uc.repo.GetAssetsByCodes(ctx, []string{assetCode})
	if err != nil {
		return fmt.Errorf("failed to load asset: %w", err)
	}
	if len(assets) == 0 {
		return fmt.Errorf("asset %s: %w", assetCode, apperrors.ErrNotFound)
	}

	updated := assets[0]
	updated.Value += amount

	if err := uc.repo.UpdateAsset(ctx, &updated); err != nil {
		return fmt.Errorf("failed to update asset amount: %w", err)
	}

	return nil
}

// CreateAsset registers a new asset
func (uc *assetUC) CreateAsset(ctx context.Context, a *models.Asset) error {
	if a.AssetCode == "" {
		return fmt.Errorf("%w: asset code is required", apperrors.ErrValidation)
	}
	return uc.repo.CreateAsset(ctx, a)
}

// GetAssetByID retrieves one asset
func (uc *assetUC) GetAssetByID(ctx context.Context, id int64) (*models.Asset, error) {
	a, err := uc.repo.GetAssetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("asset %d: %w", id, apperrors.ErrNotFound)
	}
	return a, nil
}

// GetAllAssets lists the full inventory
func (uc *assetUC) GetAllAssets(ctx context.Context) ([]models.Asset, error) {
	return uc.repo.GetAllAssets(ctx)
}

// UpdateAsset overwrites an asset's code, name and value
func (uc *assetUC) UpdateAsset(ctx context.Context, id int64, a *models.Asset) (*models.Asset, error) {
	existing, err := uc.repo.GetAssetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("asset %d: %w", id, apperrors.ErrNotFound)
	}

	existing.AssetCode = a.AssetCode
	existing.AssetName = a.AssetName
	existing.Value = a.Value

	if err := uc.repo.UpdateAsset(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return existing, nil
}

// DeleteAsset removes an asset
func (uc *assetUC) DeleteAsset(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetAssetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("asset %d: %w", id, apperrors.ErrNotFound)
	}

	return uc.repo.DeleteAsset(ctx, id)
}
