package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	catalogAPI "github.com/galihpp/storefront-catalog/internal/catalog/api"
	catalogRepo "github.com/galihpp/storefront-catalog/internal/catalog/repository"
	catalogService "github.com/galihpp/storefront-catalog/internal/catalog/service"
	homepageAPI "github.com/galihpp/storefront-catalog/internal/homepage/api"
	homepageRepo "github.com/galihpp/storefront-catalog/internal/homepage/repository"
	homepageService "github.com/galihpp/storefront-catalog/internal/homepage/service"
	"github.com/galihpp/storefront-catalog/internal/platform/config"
	"github.com/galihpp/storefront-catalog/internal/platform/database"
	"github.com/galihpp/storefront-catalog/internal/platform/logger"
	"github.com/galihpp/storefront-catalog/internal/platform/middleware"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	// Load Config
	dbCfg := config.LoadCatalogDBConfig()
	serverCfg := config.LoadServerConfig("8080")
	catalogCfg := config.LoadCatalogConfig()

	logger.Info("Starting Catalog Service...")

	// Setup Database
	db, err := database.Connect(dbCfg.DSN)
	if err != nil {
		logger.Error("Failed to connect to database for Catalog Service", err, nil)
		return
	}
	defer db.Close()

	// Setup Dependencies
	catRepository := catalogRepo.NewPostgresCatalogRepository(db)
	catService := catalogService.NewCatalogService(catRepository, catalogCfg.StatsReportInterval)
	catalogHandler := catalogAPI.NewCatalogHandler(catService)

	homeRepository := homepageRepo.NewPostgresHomepageRepository(db)
	homeService := homepageService.NewHomepageService(homeRepository)
	homepageHandler := homepageAPI.NewHomepageHandler(homeService)

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false
	router.Use(cors.Default())
	router.Use(middleware.RequestID())

	apiV1 := router.Group("/api/v1")
	catalogHandler.RegisterRoutes(apiV1)
	homepageHandler.RegisterRoutes(apiV1)

	logger.Info("Catalog Service running on port " + serverCfg.Port)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run Catalog Service server", err, nil)
	}
}
