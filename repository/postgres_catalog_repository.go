package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"artfulito-store/models"
)

// PostgresCatalogRepository reads the catalog from the products table.
// Expected columns: id, name, price, category, description, image, position.
type PostgresCatalogRepository struct {
	db *sql.DB
}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository
func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

// Ensure PostgresCatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*PostgresCatalogRepository)(nil)

const catalogQuery = `
	SELECT
		id::text,
		name,
		price::bigint,
		COALESCE(category, '') AS category,
		COALESCE(description, '') AS description,
		COALESCE(image, '') AS image
	FROM products
	ORDER BY position ASC, id ASC
`

// LoadCatalog reads every product in catalog order
func (r *PostgresCatalogRepository) LoadCatalog(ctx context.Context) ([]models.Product, error) {
	if r.db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	rows, err := r.db.QueryContext(ctx, catalogQuery)
	if err != nil {
		log.Printf("❌ Error querying catalog: %v", err)
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		var id string
		if err := rows.Scan(&id, &p.Name, &p.Price, &p.Category, &p.Description, &p.Image); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.ID = models.ProductID(id)
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	log.Printf("✓ LoadCatalog: Loaded %d products from database", len(products))
	return products, nil
}
