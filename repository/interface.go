package repository

import (
	"context"

	"artfulito-store/models"
)

// CatalogFileName is the logical name of the static catalog resource
const CatalogFileName = "products.json"

// CatalogRepositoryInterface defines the contract for reading the product catalog.
// Every call performs one fresh read; implementations keep no cache.
type CatalogRepositoryInterface interface {
	LoadCatalog(ctx context.Context) ([]models.Product, error)
}

// DriveFileDownloader defines the Google Drive operation needed by DriveCatalogRepository
type DriveFileDownloader interface {
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}
