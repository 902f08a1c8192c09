package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateImageVariants(t *testing.T) {
	t.Run("substitutes the size pattern", func(t *testing.T) {
		base := "https://images.example.com/photo.jpg?w=400&h=400&fit=crop"
		got := GenerateImageVariants(base)

		assert.Equal(t, []string{
			base,
			"https://images.example.com/photo.jpg?w=400&h=400&sat=-20&fit=crop",
			"https://images.example.com/photo.jpg?w=400&h=400&brightness=10&fit=crop",
		}, got)
	})

	t.Run("only the first occurrence is replaced", func(t *testing.T) {
		got := GenerateImageVariants("a?w=400&h=400#w=400&h=400")
		assert.Equal(t, "a?w=400&h=400&sat=-20#w=400&h=400", got[1])
	})

	t.Run("without the pattern every variant is the base image", func(t *testing.T) {
		got := GenerateImageVariants("/img/b.jpg")
		assert.Equal(t, []string{"/img/b.jpg", "/img/b.jpg", "/img/b.jpg"}, got)
	})

	t.Run("always three entries, first unmodified, pure", func(t *testing.T) {
		for _, base := range []string{"", "x", "https://a/b?w=400&h=400"} {
			got := GenerateImageVariants(base)
			assert.Len(t, got, ImageVariantCount)
			assert.Equal(t, base, got[0])
			assert.Equal(t, got, GenerateImageVariants(base))
		}
	})
}

func TestGallery_Select(t *testing.T) {
	g := NewGallery("https://a/b?w=400&h=400")
	assert.Equal(t, 0, g.Active)
	assert.Equal(t, g.Images[0], g.MainImage())

	assert.Equal(t, g.Images[2], g.Select(2))
	assert.Equal(t, 2, g.Active)
	assert.Equal(t, g.Images[2], g.MainImage())

	g.Select(1)
	assert.Equal(t, 1, g.Active)
}

func TestGallery_SelectOutOfRangePanics(t *testing.T) {
	g := NewGallery("x")
	assert.Panics(t, func() { g.Select(3) })
	assert.Panics(t, func() { g.Select(-1) })
}
