package repository

import (
	"context"
	"fmt"
	"log"

	"artfulito-store/models"
)

// DriveCatalogRepository reads the catalog file stored on Google Drive
type DriveCatalogRepository struct {
	drive  DriveFileDownloader
	fileID string
}

// NewDriveCatalogRepository creates a repository for the Drive file with the given ID
func NewDriveCatalogRepository(drive DriveFileDownloader, fileID string) *DriveCatalogRepository {
	return &DriveCatalogRepository{
		drive:  drive,
		fileID: fileID,
	}
}

// Ensure DriveCatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*DriveCatalogRepository)(nil)

// LoadCatalog downloads and parses the catalog file
func (r *DriveCatalogRepository) LoadCatalog(ctx context.Context) ([]models.Product, error) {
	if r.fileID == "" {
		return nil, fmt.Errorf("drive catalog file id is not set")
	}

	data, err := r.drive.DownloadFile(ctx, r.fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to download catalog from Drive: %w", err)
	}

	products, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	log.Printf("✓ LoadCatalog: Loaded %d products from Drive file %s", len(products), r.fileID)
	return products, nil
}
