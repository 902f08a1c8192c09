package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"artfulito-store/models"
)

// maxCatalogSize caps how much of the catalog response is read
const maxCatalogSize = 10 << 20

// HTTPCatalogRepository reads products.json from a statically hosted location
type HTTPCatalogRepository struct {
	catalogURL string
	httpClient *http.Client
}

// NewHTTPCatalogRepository creates a repository reading <baseURL>/products.json
func NewHTTPCatalogRepository(baseURL string, timeout time.Duration) (*HTTPCatalogRepository, error) {
	catalogURL, err := url.JoinPath(baseURL, CatalogFileName)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base URL %q: %w", baseURL, err)
	}

	return &HTTPCatalogRepository{
		catalogURL: catalogURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Ensure HTTPCatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*HTTPCatalogRepository)(nil)

// CatalogURL returns the resolved catalog location
func (r *HTTPCatalogRepository) CatalogURL() string {
	return r.catalogURL
}

// LoadCatalog fetches and parses the catalog
func (r *HTTPCatalogRepository) LoadCatalog(ctx context.Context) ([]models.Product, error) {
	log.Printf("📥 LoadCatalog: Fetching %s", r.catalogURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.catalogURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	products, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	log.Printf("✓ LoadCatalog: Loaded %d products from %s", len(products), r.catalogURL)
	return products, nil
}

// ParseCatalog decodes the catalog file content: a JSON array of product objects
func ParseCatalog(data []byte) ([]models.Product, error) {
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	// A bare null is valid JSON but not a catalog
	if products == nil {
		return nil, fmt.Errorf("failed to parse catalog: expected a JSON array")
	}
	return products, nil
}
