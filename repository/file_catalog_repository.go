package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"artfulito-store/models"
)

// FileCatalogRepository reads products.json from a local directory
type FileCatalogRepository struct {
	path string
}

// NewFileCatalogRepository creates a repository reading <dir>/products.json
func NewFileCatalogRepository(dir string) *FileCatalogRepository {
	return &FileCatalogRepository{
		path: filepath.Join(dir, CatalogFileName),
	}
}

// Ensure FileCatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*FileCatalogRepository)(nil)

// LoadCatalog reads and parses the catalog file
func (r *FileCatalogRepository) LoadCatalog(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	products, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	log.Printf("✓ LoadCatalog: Loaded %d products from %s", len(products), r.path)
	return products, nil
}
