package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"artfulito-store/app/controller"
	"artfulito-store/app/router"
	"artfulito-store/db"
	"artfulito-store/repository"
	"artfulito-store/service"
	"artfulito-store/utils"
)

// Initialize wires the catalog source, services and routes and returns the HTTP handler
func Initialize(ctx context.Context, cfg *Config) (http.Handler, error) {
	catalogRepo, err := newCatalogRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	storefront, err := LoadStorefront(cfg.StorefrontPath)
	if err != nil {
		return nil, err
	}

	opts := service.ViewOptions{
		Storefront: storefront,
		FormatPrice: func(amount int64) string {
			return utils.FormatPrice(amount, cfg.Locale, cfg.Currency)
		},
	}

	snapshotService := service.NewSnapshotService(cfg.BaseURL, 0)

	// Create controllers
	controllers := &router.Controllers{
		Product: controller.NewProductController(catalogRepo, opts, snapshotService),
	}

	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers, cfg.StaticDir)

	return mux, nil
}

// newCatalogRepository builds the repository for the configured catalog source
func newCatalogRepository(ctx context.Context, cfg *Config) (repository.CatalogRepositoryInterface, error) {
	switch cfg.CatalogSource {
	case CatalogSourceFile:
		log.Printf("📦 Catalog source: file %s", cfg.CatalogDir)
		return repository.NewFileCatalogRepository(cfg.CatalogDir), nil

	case CatalogSourceDrive:
		driveService, err := service.NewDriveService(ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		return newDriveCatalogRepository(ctx, driveService, cfg.DriveFileID, cfg.DriveFolderID)

	case CatalogSourcePostgres:
		if err := db.InitDB(ctx); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Printf("📦 Catalog source: postgres")
		return repository.NewPostgresCatalogRepository(db.DB), nil

	default:
		repo, err := repository.NewHTTPCatalogRepository(cfg.CatalogBaseURL, cfg.HTTPTimeout)
		if err != nil {
			return nil, err
		}
		log.Printf("📦 Catalog source: %s", repo.CatalogURL())
		return repo, nil
	}
}

// newDriveCatalogRepository looks up products.json in folderID when no file ID is configured
func newDriveCatalogRepository(ctx context.Context, drive service.DriveServiceInterface, fileID, folderID string) (repository.CatalogRepositoryInterface, error) {
	if fileID == "" {
		var err error
		fileID, err = drive.FindFileID(ctx, folderID, repository.CatalogFileName)
		if err != nil {
			return nil, fmt.Errorf("failed to locate catalog on Drive: %w", err)
		}
	}
	log.Printf("📦 Catalog source: Google Drive file %s", fileID)
	return repository.NewDriveCatalogRepository(drive, fileID), nil
}
