package product_controller

import (
	"log"
	"net/http"

	catalog_cache "github.com/Nautica-Marine/nautica-store-backend/cache"
	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary List catalog products
// @Description Returns all products sorted by admin-controlled display order
// @Tags Storefront - Products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} models.ApiResponse
// @Router /products [get]
func GetProducts(c *gin.Context) {
	if cached, ok := catalog_cache.GetProducts(); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var products []models.Product
	if err := config.StoreGorm.WithContext(ctx).
		Order("display_order ASC, id ASC").
		Find(&products).Error; err != nil {
		log.Printf("[store.products] failed to fetch products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	catalog_cache.SetProducts(products)
	c.JSON(http.StatusOK, products)
}
