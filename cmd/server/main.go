package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"inspekta/internal/config"
	"inspekta/internal/handlers"
	"inspekta/internal/middleware"
	"inspekta/internal/repositories/mongodb"
	"inspekta/internal/services"
	"inspekta/pkg/blockchain"
	"inspekta/pkg/cache"
	"inspekta/pkg/database"
	"inspekta/pkg/logger"
	"inspekta/pkg/oauth"
	"inspekta/pkg/storage"
	"inspekta/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// MongoDB
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	if err := db.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Redis
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisCache.Close()

	cacheService := services.NewCacheService(redisCache, appLogger)

	// Storage provider
	storageProvider, err := newStorageProvider(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Blockchain client is optional; minting stays disabled without it
	var solanaClient *blockchain.SolanaClient
	if cfg.Blockchain.Enabled {
		solanaClient, err = blockchain.NewSolanaClient(&blockchain.Config{
			RPCEndpoint:      cfg.Blockchain.RPCEndpoint,
			MintAuthorityKey: cfg.Blockchain.MintAuthorityKey,
		})
		if err != nil {
			log.Fatalf("Failed to initialize blockchain client: %v", err)
		}
		appLogger.WithField("authority", solanaClient.AuthorityAddress()).Info("Blockchain client ready")
	}

	googleOAuth := oauth.NewGoogleOAuthProvider(
		cfg.OAuth.GoogleClientID,
		cfg.OAuth.GoogleClientSecret,
		cfg.OAuth.GoogleRedirectURL,
	)

	// Repositories
	inspectionRepo := mongodb.NewInspectionRepository(db.Database, cacheService)
	photoRepo := mongodb.NewPhotoRepository(db.Database, cacheService)
	userRepo := mongodb.NewUserRepository(db.Database, cacheService)

	// Services
	photoService := services.NewPhotoService(photoRepo, inspectionRepo, storageProvider, cfg.App.BaseURL+"/files", appLogger)
	reportService := services.NewReportService(storageProvider, cfg.App.BaseURL+"/files", appLogger)
	inspectionService := services.NewInspectionService(inspectionRepo, photoRepo, photoService, reportService, cacheService, appLogger)
	mintService := services.NewMintService(inspectionRepo, solanaClient, cfg.Blockchain, appLogger)
	dashboardService := services.NewDashboardService(inspectionRepo, cacheService, appLogger)
	authService := services.NewAuthService(userRepo, googleOAuth, cfg.Security, appLogger)

	// Handlers
	inspectionHandler := handlers.NewInspectionHandler(inspectionService, mintService)
	photoHandler := handlers.NewPhotoHandler(photoService)
	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, authHandler, cfg.Security.JWTSecret)
		routes.SetupInspectionRoutes(v1, inspectionHandler, photoHandler, cfg.Security.JWTSecret)
		routes.SetupDashboardRoutes(v1, dashboardHandler, cfg.Security.JWTSecret)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"version": cfg.App.Version,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.WithField("addr", addr).Info("Starting server")
	log.Fatal(http.ListenAndServe(addr, router))
}

func newStorageProvider(cfg *config.StorageConfig) (storage.StorageProvider, error) {
	switch cfg.Provider {
	case "s3", "aws":
		return storage.NewAWSS3Storage(cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.CDNDomain)
	case "gcs", "gcp":
		return storage.NewGCPStorage(cfg.GCP.ProjectID, cfg.GCP.Bucket, cfg.GCP.CredentialsFile, cfg.GCP.CDNDomain)
	default:
		return storage.NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
	}
}
