package admin_routes

import (
	"github.com/Nautica-Marine/nautica-store-backend/controllers/admin/analytics_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/admin/auth_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/admin/brand_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/admin/migration_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/admin/modelspec_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/admin/order_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/admin/product_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/admin/query_controller"
	"github.com/Nautica-Marine/nautica-store-backend/controllers/admin/settings_controller"
	"github.com/Nautica-Marine/nautica-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the back-office endpoints. Everything except
// login sits behind token auth, and every mutation is activity-logged.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	admin.POST("/login", auth_controller.Login)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════
	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Auth
		protected.POST("/logout", auth_controller.Logout)

		// Products
		protected.POST("/products", product_controller.CreateProduct)
		protected.PUT("/products/:id", product_controller.UpdateProduct)
		protected.DELETE("/products/:id", product_controller.DeleteProduct)
		protected.PATCH("/products/:id/order", product_controller.ReorderProduct)

		// Brands
		protected.POST("/brands", brand_controller.CreateBrand)
		protected.PUT("/brands/:id", brand_controller.UpdateBrand)
		protected.DELETE("/brands/:id", brand_controller.DeleteBrand)

		// Orders
		protected.GET("/orders", order_controller.GetOrders)
		protected.GET("/orders/:id", order_controller.GetOrderByID)
		protected.PATCH("/orders/:id/status", order_controller.UpdateOrderStatus)
		protected.DELETE("/orders/:id", order_controller.DeleteOrder)

		// Queries
		protected.GET("/queries", query_controller.GetQueries)
		protected.DELETE("/queries/:id", query_controller.DeleteQuery)

		// Model specifications
		protected.GET("/model-specifications", modelspec_controller.ListModelSpecs)
		protected.POST("/model-specifications", modelspec_controller.UpsertModelSpec)
		protected.DELETE("/model-specifications/:modelName", modelspec_controller.DeleteModelSpec)

		// Settings
		protected.PUT("/settings/logo", settings_controller.UpdateLogo)

		// Analytics
		protected.GET("/analytics/overview", analytics_controller.GetTrafficOverview)
		protected.GET("/analytics/daily", analytics_controller.GetDailyVisits)
		protected.GET("/analytics/top-pages", analytics_controller.GetTopPages)

		// Migration
		protected.POST("/migrate", migration_controller.ImportLegacyData)
	}
}
