package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritasbank/veritas/internal/pkg/models"
	"github.com/veritasbank/veritas/services/asset/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func assetColumns() []string {
	return []string{"id", "asset_code", "asset_name", "value"}
}

func TestGetAssetsByCodes_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAssetRepository(&models.Config{}, db)

	rows := sqlmock.NewRows(assetColumns()).
		AddRow(1, "GOLD", "Gold", 10).
		AddRow(2, "SILVER", "Silver", 50)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE asset_code IN")).
		WithArgs("GOLD", "SILVER").
		WillReturnRows(rows)

	assets, err := repo.GetAssetsByCodes(context.Background(), []string{"GOLD", "SILVER"})
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "GOLD", assets[0].AssetCode)
	assert.Equal(t, 10, assets[0].Value)
}

func TestGetAssetsByCodes_EmptyInput(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := repository.NewAssetRepository(&models.Config{}, db)

	assets, err := repo.GetAssetsByCodes(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, assets)
}

func TestCreateAsset_FillsGeneratedID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAssetRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO t_asset")).
		WithArgs("GOLD", "Gold", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	asset := &models.Asset{AssetCode: "GOLD", AssetName: "Gold", Value: 10}
	err := repo.CreateAsset(context.Background(), asset)

	require.NoError(t, err)
	assert.Equal(t, int64(7), asset.ID)
}

func TestGetAssetByID_MissingRowIsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAssetRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM t_asset")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(assetColumns()))

	asset, err := repo.GetAssetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, asset)
}

func TestUpdateAsset_NoRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAssetRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE t_asset")).
		WithArgs("GOLD", "Gold", 10, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAsset(context.Background(), &models.Asset{ID: 99, AssetCode: "GOLD", AssetName: "Gold", Value: 10})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "asset not found")
}

func TestDeleteAsset_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAssetRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM t_asset")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteAsset(context.Background(), 1)
	assert.NoError(t, err)
}
