package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/veritasbank/veritas/internal/pkg/models"
)

// AssetRepo persists the asset inventory in PostgreSQL
type AssetRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewAssetRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *AssetRepo {
	return &AssetRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetAssetsByCodes retrieves the assets matching any of the given codes.
// Unknown codes simply produce no row.
func (r *AssetRepo) GetAssetsByCodes(ctx context.Context, assetCodes []string) ([]models.Asset, error) {
	if len(assetCodes) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, asset_code, asset_name, value
		FROM t_asset
		WHERE asset_code IN (?)
	`, assetCodes)
	if err != nil {
		return nil, fmt.Errorf("failed to build asset query: %w", err)
	}

	query = r.db.Rebind(query)

	var assets []models.Asset
	if err := r.db.SelectContext(ctx, &assets, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query assets by code: %w", err)
	}

	return assets, nil
}

// CreateAsset inserts a new asset row and fills in the generated id
func (r *AssetRepo) CreateAsset(ctx context.Context, asset *models.Asset) error {
	query := `
		INSERT INTO t_asset (asset_code, asset_name, value)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := r.db.QueryRowContext(ctx, query, asset.AssetCode, asset.AssetName, asset.Value).Scan(&asset.ID); err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}

	return nil
}

// GetAssetByID retrieves one asset; a missing row yields (nil, nil)
func (r *AssetRepo) GetAssetByID(ctx context.Context, id int64) (*models.Asset, error) {
	query := `
		SELECT id, asset_code, asset_name, value
		FROM t_asset
		WHERE id = $1
	`

	var asset models.Asset
	err := r.db.GetContext(ctx, &asset, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query asset: %w", err)
	}

	return &asset, nil
}

// GetAllAssets lists every asset
func (r *AssetRepo) GetAllAssets(ctx context.Context) ([]models.Asset, error) {
	query := `
		SELECT id, asset_code, asset_name, value
		FROM t_asset
		ORDER BY id
	`

	var assets []models.Asset
	if err := r.db.SelectContext(ctx, &assets, query); err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}

	return assets, nil
}

// UpdateAsset overwrites an asset row
func (r *AssetRepo) UpdateAsset(ctx context.Context, asset *models.Asset) error {
	query := `
		UPDATE t_asset
		SET asset_code = $1, asset_name = $2, value = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, asset.AssetCode, asset.AssetName, asset.Value, asset.ID)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check asset update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("asset not found: %d", asset.ID)
	}

	return nil
}

// DeleteAsset removes an asset row
func (r *AssetRepo) DeleteAsset(ctx context.Context, id int64) error {
	query := `DELETE FROM t_asset WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check asset delete: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("asset not found: %d", id)
	}

	return nil
}
