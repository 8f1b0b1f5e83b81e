package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"navillera/app/controller"
	"navillera/app/router"
	"navillera/repository"
	"navillera/service"
)

// Initialize wires the services, repositories and controllers and returns the
// configured HTTP handler.
func Initialize() (http.Handler, error) {
	ctx := context.Background()

	charmsDir := os.Getenv("CHARMS_DIR")
	if charmsDir == "" {
		charmsDir = "public/charms"
	}
	cacheDir := os.Getenv("IMAGE_CACHE_DIR")
	if cacheDir == "" {
		cacheDir = "cache/images"
	}

	spreadsheetID := os.Getenv("SPREADSHEET_ID")
	if spreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID environment variable is not set")
	}
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" && os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON") == "" {
		return nil, fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
	}

	// Sheets-backed repositories
	sheetsClient, err := repository.NewSheetsClient(ctx, credentialsPath)
	if err != nil {
		return nil, err
	}
	orderRepo := repository.NewOrderSheetRepository(sheetsClient, spreadsheetID)
	stockRepo := repository.NewStockSheetRepository(sheetsClient, spreadsheetID)

	baseColorsFile := os.Getenv("BASE_COLORS_FILE")
	if baseColorsFile == "" {
		baseColorsFile = "base-colors.json"
	}
	baseColorRepo := repository.NewBaseColorRepository(baseColorsFile)

	// Core services
	optimizer := service.NewImageOptimizer(cacheDir)
	if err := optimizer.EnsureCacheDir(); err != nil {
		log.Printf("warning: %v", err)
	}
	catalogService := service.NewCatalogService(charmsDir)
	fileService := service.NewCharmFileService(charmsDir, optimizer)
	builderService := service.NewBuilderService(baseColorRepo)
	mailService := service.NewMailServiceFromEnv()
	orderService := service.NewOrderService(orderRepo, mailService)

	// Catalog export: the headless browser loads the render endpoint through
	// this base URL.
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://localhost:" + port
	}
	pdfService := service.NewCatalogPDFService(catalogService, baseURL)

	// Drive import is optional
	var syncService *service.CharmSyncService
	folderID := os.Getenv("CHARMS_DRIVE_FOLDER_ID")
	if folderID != "" {
		driveService, err := service.NewDriveService(ctx, credentialsPath)
		if err != nil {
			return nil, err
		}
		syncService = service.NewCharmSyncService(driveService, fileService)
	} else {
		log.Println("⏭️ CHARMS_DRIVE_FOLDER_ID not set, Drive import disabled")
	}

	controllers := &router.Controllers{
		Catalog:   controller.NewCatalogController(catalogService, fileService, optimizer, pdfService, syncService, folderID),
		CharmFile: controller.NewCharmFileController(fileService),
		BaseColor: controller.NewBaseColorController(baseColorRepo),
		Stock:     controller.NewStockController(stockRepo),
		Builder:   controller.NewBuilderController(builderService, catalogService, orderService),
		Order:     controller.NewOrderController(orderService, orderRepo),
		Admin:     controller.NewAdminController(os.Getenv("ADMIN_PASSWORD")),
	}

	return router.SetupRoutes(controllers), nil
}
