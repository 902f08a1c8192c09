package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestFormatIDR(t *testing.T) {
	t.Run("groups thousands with dots", func(t *testing.T) {
		got := FormatIDR(150000)
		assert.True(t, strings.HasPrefix(got, "Rp"), got)
		assert.True(t, strings.HasSuffix(got, "\u00a0150.000"), got)
		assert.NotContains(t, got, ",")
	})

	t.Run("zero has no fraction digits", func(t *testing.T) {
		got := FormatIDR(0)
		assert.True(t, strings.HasPrefix(got, "Rp"), got)
		assert.True(t, strings.HasSuffix(got, "\u00a00"), got)
		assert.NotContains(t, got, ",")
	})

	t.Run("millions", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(FormatIDR(1250000), "1.250.000"))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, FormatIDR(50000), FormatIDR(50000))
	})

	t.Run("negative amounts keep the sign in front", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(FormatIDR(-5000), "-Rp"))
	})
}

func TestFormatPrice_OtherLocale(t *testing.T) {
	got := FormatPrice(150000, language.AmericanEnglish, currency.USD)
	assert.True(t, strings.HasSuffix(got, "150,000"), got)
	assert.True(t, strings.HasPrefix(got, "$"), got)
}
