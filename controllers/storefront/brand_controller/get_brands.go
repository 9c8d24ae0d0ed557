package brand_controller

import (
	"log"
	"net/http"

	catalog_cache "github.com/Nautica-Marine/nautica-store-backend/cache"
	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetBrands godoc
// @Summary List brands
// @Tags Storefront - Brands
// @Produce json
// @Success 200 {array} models.Brand
// @Failure 500 {object} models.ApiResponse
// @Router /brands [get]
func GetBrands(c *gin.Context) {
	if cached, ok := catalog_cache.GetBrands(); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var brands []models.Brand
	if err := config.StoreGorm.WithContext(ctx).
		Order("name ASC").
		Find(&brands).Error; err != nil {
		log.Printf("[store.brands] failed to fetch brands: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch brands"))
		return
	}

	catalog_cache.SetBrands(brands)
	c.JSON(http.StatusOK, brands)
}
