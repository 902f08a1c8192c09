package service

import (
	"fmt"

	"artfulito-store/models"
	"artfulito-store/utils"
)

// ViewOptions holds the storefront copy and price formatting used to build views
type ViewOptions struct {
	Storefront  models.Storefront
	FormatPrice func(amount int64) string
}

func (o ViewOptions) withDefaults() ViewOptions {
	o.Storefront = o.Storefront.WithDefaults()
	if o.FormatPrice == nil {
		o.FormatPrice = utils.FormatIDR
	}
	return o
}

// PageTitle returns the browser title for a product
func PageTitle(productName, siteName string) string {
	return fmt.Sprintf("%s - %s", productName, siteName)
}

// WhatsAppLink builds a wa.me link with the greeting and product name pre-filled
func WhatsAppLink(number, greeting, productName string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, utils.EncodeURIComponent(greeting+productName))
}

// EmailLink builds a mailto link with the subject and product name pre-filled
func EmailLink(address, subject, productName string) string {
	return fmt.Sprintf("mailto:%s?subject=%s", address, utils.EncodeURIComponent(subject+productName))
}

// BuildDetailView projects a product and the active image index into the detail view.
// It has no side effects; activeIndex must be a valid variant index.
func BuildDetailView(product models.Product, activeIndex int, opts ViewOptions) models.DetailView {
	opts = opts.withDefaults()
	store := opts.Storefront

	images := GenerateImageVariants(product.Image)
	thumbnails := make([]models.Thumbnail, len(images))
	for i, img := range images {
		thumbnails[i] = models.Thumbnail{
			Index:  i,
			URL:    img,
			Alt:    fmt.Sprintf("%s - Image %d", product.Name, i+1),
			Active: i == activeIndex,
		}
	}

	features := make([]string, len(store.Features))
	copy(features, store.Features)

	return models.DetailView{
		ProductID:   product.ID.String(),
		Title:       PageTitle(product.Name, store.SiteName),
		ActiveImage: activeIndex,
		Gallery: models.GalleryView{
			MainImage:  images[activeIndex],
			MainAlt:    product.Name,
			Thumbnails: thumbnails,
		},
		Info: models.InfoView{
			Name:           product.Name,
			FormattedPrice: opts.FormatPrice(product.Price),
			Category:       product.Category,
			Description:    product.Description,
			FeaturesTitle:  store.FeaturesTitle,
			Features:       features,
			ContactTitle:   store.ContactTitle,
			ContactText:    store.ContactText,
			Contacts: []models.ContactLink{
				{
					Label:  "💬 Chat WhatsApp",
					Href:   WhatsAppLink(store.WhatsAppNumber, store.WhatsAppText, product.Name),
					Style:  "btn-primary",
					NewTab: true,
				},
				{
					Label: "✉️ Email Kami",
					Href:  EmailLink(store.ContactEmail, store.EmailSubject, product.Name),
					Style: "btn-secondary",
				},
			},
		},
	}
}
