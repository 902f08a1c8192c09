package models

// Storefront holds the shop-wide copy shown around every product
type Storefront struct {
	SiteName       string   `yaml:"site_name" json:"siteName"`
	WhatsAppNumber string   `yaml:"whatsapp_number" json:"whatsappNumber"`
	ContactEmail   string   `yaml:"contact_email" json:"contactEmail"`
	WhatsAppText   string   `yaml:"whatsapp_text" json:"whatsappText"`   // Prefix before the product name
	EmailSubject   string   `yaml:"email_subject" json:"emailSubject"`   // Prefix before the product name
	FeaturesTitle  string   `yaml:"features_title" json:"featuresTitle"`
	Features       []string `yaml:"features" json:"features"`
	ContactTitle   string   `yaml:"contact_title" json:"contactTitle"`
	ContactText    string   `yaml:"contact_text" json:"contactText"`
}

// DefaultStorefront returns the Artfulito storefront copy
func DefaultStorefront() Storefront {
	return Storefront{
		SiteName:       "Artfulito",
		WhatsAppNumber: "6281234567890",
		ContactEmail:   "info@artfulito.com",
		WhatsAppText:   "Halo, saya tertarik dengan ",
		EmailSubject:   "Inquiry about ",
		FeaturesTitle:  "Keunggulan Produk:",
		Features: []string{
			"100% handmade dengan cinta",
			"Menggunakan benang berkualitas tinggi",
			"Aman untuk anak-anak",
			"Dapat dicuci dengan mudah",
			"Desain unik dan eksklusif",
		},
		ContactTitle: "Tertarik dengan produk ini?",
		ContactText:  "Hubungi kami untuk informasi lebih lanjut atau untuk memesan produk ini.",
	}
}

// WithDefaults fills every empty field from DefaultStorefront
func (s Storefront) WithDefaults() Storefront {
	d := DefaultStorefront()
	if s.SiteName == "" {
		s.SiteName = d.SiteName
	}
	if s.WhatsAppNumber == "" {
		s.WhatsAppNumber = d.WhatsAppNumber
	}
	if s.ContactEmail == "" {
		s.ContactEmail = d.ContactEmail
	}
	if s.WhatsAppText == "" {
		s.WhatsAppText = d.WhatsAppText
	}
	if s.EmailSubject == "" {
		s.EmailSubject = d.EmailSubject
	}
	if s.FeaturesTitle == "" {
		s.FeaturesTitle = d.FeaturesTitle
	}
	if len(s.Features) == 0 {
		s.Features = d.Features
	}
	if s.ContactTitle == "" {
		s.ContactTitle = d.ContactTitle
	}
	if s.ContactText == "" {
		s.ContactText = d.ContactText
	}
	return s
}
