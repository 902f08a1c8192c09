package service

import "strings"

const (
	// ImageVariantCount is the fixed size of every image variant set
	ImageVariantCount = 3

	variantSizePattern = "w=400&h=400"
)

// GenerateImageVariants derives the gallery images from a product's base image.
// This is a placeholder: the second and third entries only add saturation and
// brightness hints to the first "w=400&h=400" in the URL, and equal the base
// image when that pattern is absent.
func GenerateImageVariants(baseImage string) []string {
	return []string{
		baseImage,
		strings.Replace(baseImage, variantSizePattern, variantSizePattern+"&sat=-20", 1),
		strings.Replace(baseImage, variantSizePattern, variantSizePattern+"&brightness=10", 1),
	}
}

// Gallery tracks which image variant is shown as the main image
type Gallery struct {
	Images []string
	Active int
}

// NewGallery creates a gallery for the base image with the first variant active
func NewGallery(baseImage string) *Gallery {
	return &Gallery{
		Images: GenerateImageVariants(baseImage),
		Active: 0,
	}
}

// Select makes image k the main image and returns it.
// k must be in [0, len(Images)); other values panic like any out-of-range index.
func (g *Gallery) Select(k int) string {
	image := g.Images[k]
	g.Active = k
	return image
}

// MainImage returns the currently displayed image
func (g *Gallery) MainImage() string {
	return g.Images[g.Active]
}
