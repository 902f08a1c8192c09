package service

import (
	"errors"

	"artfulito-store/models"
)

var (
	// ErrMissingProductID is returned when the page URL carries no id parameter
	ErrMissingProductID = errors.New("product id is missing")
	// ErrCatalogUnavailable is returned for every catalog read failure
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrProductNotFound is returned when no catalog record matches the id
	ErrProductNotFound = errors.New("product not found")
)

// ResolveProduct finds the first product whose identifier equals id as text.
// An absent id fails without looking at the catalog.
func ResolveProduct(id string, present bool, catalog []models.Product) (*models.Product, error) {
	if !present {
		return nil, ErrMissingProductID
	}

	for i := range catalog {
		if catalog[i].ID.String() == id {
			product := catalog[i]
			return &product, nil
		}
	}

	return nil, ErrProductNotFound
}
