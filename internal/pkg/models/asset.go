package models

// Asset is one unit of fungible inventory tracked independently of accounts
type Asset struct {
	ID        int64  `json:"id" db:"id"`
	AssetCode string `json:"assetCode" db:"asset_code"`
	AssetName string `json:"assetName" db:"asset_name"`
	Value     int    `json:"value" db:"value"`
}

// AssetAvailability is the per-code answer to an availability query
type AssetAvailability struct {
	AssetCode      string `json:"assetCode"`
	AssetAvailable bool   `json:"isAssetAvailable"`
}
