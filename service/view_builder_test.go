package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artfulito-store/models"
)

func TestBuildDetailView(t *testing.T) {
	product := models.Product{
		ID:          "1",
		Name:        "Boneka A",
		Price:       50000,
		Category:    "Boneka",
		Description: "Boneka rajut",
		Image:       "https://img/a.jpg?w=400&h=400",
	}
	opts := ViewOptions{FormatPrice: func(int64) string { return "Rp 50.000" }}

	view := BuildDetailView(product, 0, opts)

	assert.Equal(t, "1", view.ProductID)
	assert.Equal(t, "Boneka A - Artfulito", view.Title)
	assert.Equal(t, product.Image, view.Gallery.MainImage)
	assert.Equal(t, "Boneka A", view.Gallery.MainAlt)
	require.Len(t, view.Gallery.Thumbnails, 3)
	assert.True(t, view.Gallery.Thumbnails[0].Active)
	assert.False(t, view.Gallery.Thumbnails[1].Active)
	assert.False(t, view.Gallery.Thumbnails[2].Active)
	assert.Equal(t, "Boneka A - Image 2", view.Gallery.Thumbnails[1].Alt)

	assert.Equal(t, "Boneka A", view.Info.Name)
	assert.Equal(t, "Rp 50.000", view.Info.FormattedPrice)
	assert.Equal(t, "Boneka", view.Info.Category)
	assert.Equal(t, "Boneka rajut", view.Info.Description)
	assert.Equal(t, models.DefaultStorefront().Features, view.Info.Features)

	require.Len(t, view.Info.Contacts, 2)
	assert.Equal(t, "https://wa.me/6281234567890?text=Halo%2C%20saya%20tertarik%20dengan%20Boneka%20A", view.Info.Contacts[0].Href)
	assert.True(t, view.Info.Contacts[0].NewTab)
	assert.Equal(t, "mailto:info@artfulito.com?subject=Inquiry%20about%20Boneka%20A", view.Info.Contacts[1].Href)
}

func TestBuildDetailView_ActiveIndex(t *testing.T) {
	product := models.Product{ID: "1", Name: "A", Image: "https://img/a.jpg?w=400&h=400"}

	for k := 0; k < ImageVariantCount; k++ {
		view := BuildDetailView(product, k, ViewOptions{})
		assert.Equal(t, k, view.ActiveImage)
		assert.Equal(t, GenerateImageVariants(product.Image)[k], view.Gallery.MainImage)

		active := 0
		for _, thumb := range view.Gallery.Thumbnails {
			if thumb.Active {
				active++
				assert.Equal(t, k, thumb.Index)
			}
		}
		assert.Equal(t, 1, active)
	}
}

func TestBuildDetailView_CustomStorefront(t *testing.T) {
	opts := ViewOptions{Storefront: models.Storefront{
		SiteName:       "Toko Rajut",
		WhatsAppNumber: "620000",
		Features:       []string{"Satu"},
	}}

	view := BuildDetailView(models.Product{ID: "9", Name: "Topi & Syal"}, 0, opts)

	assert.Equal(t, "Topi & Syal - Toko Rajut", view.Title)
	assert.Equal(t, []string{"Satu"}, view.Info.Features)
	assert.Equal(t, "https://wa.me/620000?text=Halo%2C%20saya%20tertarik%20dengan%20Topi%20%26%20Syal", view.Info.Contacts[0].Href)
}

func TestBuildDetailView_DoesNotShareFeatures(t *testing.T) {
	store := models.DefaultStorefront()
	view := BuildDetailView(models.Product{ID: "1"}, 0, ViewOptions{Storefront: store})
	view.Info.Features[0] = "changed"
	assert.NotEqual(t, "changed", store.Features[0])
}
