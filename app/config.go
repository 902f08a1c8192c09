package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"artfulito-store/models"
)

// Catalog sources
const (
	CatalogSourceHTTP     = "http"
	CatalogSourceFile     = "file"
	CatalogSourceDrive    = "drive"
	CatalogSourcePostgres = "postgres"
)

// Config holds the application settings read from the environment
type Config struct {
	Port            string
	BaseURL         string // Public URL of this server, used by headless Chrome snapshots
	CatalogSource   string
	CatalogBaseURL  string // Where products.json is hosted for the http source
	CatalogDir      string // Directory holding products.json for the file source
	DriveFileID     string
	DriveFolderID   string
	CredentialsPath string
	StaticDir       string
	StorefrontPath  string
	Locale          language.Tag
	Currency        currency.Unit
	HTTPTimeout     time.Duration
}

// LoadConfig reads the configuration from environment variables
func LoadConfig() (*Config, error) {
	port := strings.TrimPrefix(getEnv("PORT", "8080"), ":")

	cfg := &Config{
		Port:            port,
		BaseURL:         strings.TrimRight(getEnv("BASE_URL", "http://localhost:"+port), "/"),
		CatalogSource:   strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceHTTP)),
		CatalogDir:      getEnv("CATALOG_DIR", "static"),
		DriveFileID:     os.Getenv("CATALOG_DRIVE_FILE_ID"),
		DriveFolderID:   os.Getenv("CATALOG_DRIVE_FOLDER_ID"),
		CredentialsPath: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		StaticDir:       getEnv("STATIC_DIR", "static"),
		StorefrontPath:  os.Getenv("STOREFRONT_CONFIG"),
		HTTPTimeout:     time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
	}
	// The catalog is served from our own /static/ by default
	cfg.CatalogBaseURL = getEnv("CATALOG_BASE_URL", cfg.BaseURL+"/static/")

	locale, err := language.Parse(getEnv("LOCALE", "id-ID"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOCALE: %w", err)
	}
	cfg.Locale = locale

	cur, err := currency.ParseISO(strings.ToUpper(getEnv("CURRENCY", "IDR")))
	if err != nil {
		return nil, fmt.Errorf("invalid CURRENCY: %w", err)
	}
	cfg.Currency = cur

	switch cfg.CatalogSource {
	case CatalogSourceHTTP, CatalogSourceFile, CatalogSourcePostgres:
	case CatalogSourceDrive:
		if cfg.CredentialsPath == "" {
			return nil, fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
		}
		if cfg.DriveFileID == "" && cfg.DriveFolderID == "" {
			return nil, fmt.Errorf("set CATALOG_DRIVE_FILE_ID or CATALOG_DRIVE_FOLDER_ID for the drive catalog source")
		}
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q (valid: http, file, drive, postgres)", cfg.CatalogSource)
	}

	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 15 * time.Second
	}

	return cfg, nil
}

// LoadStorefront reads the storefront YAML file. An empty path yields the defaults.
func LoadStorefront(path string) (models.Storefront, error) {
	if path == "" {
		return models.DefaultStorefront(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Storefront{}, fmt.Errorf("failed to read storefront config: %w", err)
	}

	var store models.Storefront
	if err := yaml.Unmarshal(data, &store); err != nil {
		return models.Storefront{}, fmt.Errorf("failed to parse storefront config: %w", err)
	}

	return store.WithDefaults(), nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
