package models

// Thumbnail represents one clickable image in the gallery strip
type Thumbnail struct {
	Index  int    `json:"index"`
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Active bool   `json:"active"`
}

// GalleryView represents the main image plus its thumbnails
type GalleryView struct {
	MainImage  string      `json:"mainImage"`
	MainAlt    string      `json:"mainAlt"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

// ContactLink represents a pre-filled contact action
type ContactLink struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Style  string `json:"style"` // CSS button class
	NewTab bool   `json:"newTab"`
}

// InfoView represents the product information panel
type InfoView struct {
	Name           string        `json:"name"`
	FormattedPrice string        `json:"formattedPrice"`
	Category       string        `json:"category"`
	Description    string        `json:"description"`
	FeaturesTitle  string        `json:"featuresTitle"`
	Features       []string      `json:"features"`
	ContactTitle   string        `json:"contactTitle"`
	ContactText    string        `json:"contactText"`
	Contacts       []ContactLink `json:"contacts"`
}

// DetailView is the full projection of a product into the detail page.
// It is built once per render and never mutated afterwards.
type DetailView struct {
	ProductID   string      `json:"productId"`
	Title       string      `json:"title"`
	ActiveImage int         `json:"activeImage"`
	Gallery     GalleryView `json:"gallery"`
	Info        InfoView    `json:"info"`
}
