package storefront_routes

import (
	"github.com/Nautica-Marine/nautica-store-backend/controllers/storefront/brand_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/storefront/media_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/storefront/modelspec_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/storefront/order_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/storefront/product_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/storefront/query_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/storefront/settings_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/storefront/traffic_controller"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers all public endpoints. Nothing here requires
// authentication.
func SetupStorefrontRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Catalog
	// ════════════════════════════════════════════════════════════
	rg.GET("/products", product_controller.GetProducts)
	rg.GET("/products/:id", product_controller.GetProductByID)

	rg.GET("/brands", brand_controller.GetBrands)
	rg.GET("/brands/:name", brand_controller.GetBrandByName)

	rg.GET("/model-specifications/:modelName", modelspec_controller.GetModelSpec)

	// ════════════════════════════════════════════════════════════
	// Orders & Queries
	// ════════════════════════════════════════════════════════════
	rg.POST("/orders", order_controller.CreateOrder)
	rg.GET("/orders/:orderNumber/confirmation", order_controller.DownloadOrderConfirmation)

	rg.POST("/queries", query_controller.CreateQuery)

	// ════════════════════════════════════════════════════════════
	// Site
	// ════════════════════════════════════════════════════════════
	rg.GET("/settings/logo", settings_controller.GetLogo)
	rg.GET("/image-proxy", media_controller.ImageProxy)
	rg.POST("/track", traffic_controller.TrackVisit)
}
