package brand_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetBrandByName godoc
// @Summary Get a brand by name
// @Tags Storefront - Brands
// @Produce json
// @Param name path string true "Brand name"
// @Success 200 {object} models.Brand
// @Failure 404 {object} models.ApiResponse "Brand not found"
// @Failure 500 {object} models.ApiResponse
// @Router /brands/{name} [get]
func GetBrandByName(c *gin.Context) {
	name := c.Param("name")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var brand models.Brand
	if err := config.StoreGorm.WithContext(ctx).First(&brand, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Brand not found"))
			return
		}
		log.Printf("[store.brand] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch brand"))
		return
	}

	c.JSON(http.StatusOK, brand)
}
