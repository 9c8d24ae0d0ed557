// @title Nautica Marine Store API
// @version 1.0
// @description Nautica Marine Store Backend API Documentation
// @host localhost:3000
// @BasePath /api
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/middleware"
	"github.com/Nautica-Marine/nautica-store-backend/routes/admin_routes"
	"github.com/Nautica-Marine/nautica-store-backend/routes/storefront_routes"
	"github.com/Nautica-Marine/nautica-store-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// JWT service for admin auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// Content-Disposition must be exposed for PDF downloads
	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsCfg.AllowOrigins = append(corsCfg.AllowOrigins, origins)
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api")

	// Public storefront (no rate limiter)
	storefront_routes.SetupStorefrontRoutes(api)

	// Back-office, rate limited per client
	api.Use(middleware.RateLimiter(100, time.Minute))
	admin_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
