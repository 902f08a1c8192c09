package utils

import (
	"net/url"
	"strconv"
	"strings"
)

// ProductIDParam is the query parameter carrying the product identifier
const ProductIDParam = "id"

// ImageIndexParam is the query parameter carrying the selected gallery image
const ImageIndexParam = "image"

// ProductIDFromQuery returns the product identifier from the query values.
// An empty value counts as absent.
func ProductIDFromQuery(values url.Values) (string, bool) {
	id := values.Get(ProductIDParam)
	if id == "" {
		return "", false
	}
	return id, true
}

// ProductIDFromURL returns the product identifier from a page URL
func ProductIDFromURL(u *url.URL) (string, bool) {
	if u == nil {
		return "", false
	}
	return ProductIDFromQuery(u.Query())
}

// ImageIndexFromQuery parses the selected image index, falling back to 0
// when the value is missing, malformed or outside [0, count).
func ImageIndexFromQuery(values url.Values, count int) int {
	raw := strings.TrimSpace(values.Get(ImageIndexParam))
	if raw == "" {
		return 0
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 || idx >= count {
		return 0
	}
	return idx
}

// EncodeURIComponent escapes s for use inside a URL query value.
// Spaces become %20 rather than +, so mail clients show them as spaces.
func EncodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
