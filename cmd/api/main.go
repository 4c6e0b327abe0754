package main

import (
	"fmt"
	"log"

	"taxi-analytics-api/config"
	"taxi-analytics-api/handlers"
	"taxi-analytics-api/middleware"
	"taxi-analytics-api/models"
	"taxi-analytics-api/services"
	"taxi-analytics-api/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql db handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// Users live in this service's schema; the trip tables belong to the
	// warehouse loader and are never migrated from here.
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}

	// Redis backs token revocation and the refresh feed; the API stays up
	// without it.
	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, continuing degraded: %v", err)
	}

	authService := services.NewAuthService(cfg.JWT)
	tripStore := store.NewTripStore(store.NewGormQuerier(db))

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "UP",
			"message": "TLC Analytics API is running",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := handlers.NewAuthHandler(db, authService, cache)
	auth := router.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	tripsHandler := handlers.NewTripsHandler(tripStore)
	api := router.Group("/api")
	api.Use(middleware.RequireAuth(authService, db, cache))
	api.GET("/trips", tripsHandler.GetTrips)
	api.GET("/trips/sample", tripsHandler.GetSample)

	router.GET("/ws/live", handlers.RefreshWebSocket(cache, authService))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
