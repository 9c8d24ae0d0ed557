package brand_controller

import (
	"log"
	"net/http"
	"strings"

	catalog_cache "github.com/Nautica-Marine/nautica-store-backend/cache"
	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateBrand godoc
// @Summary Create a brand
// @Tags Admin - Brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brand body models.BrandRequest true "Brand details"
// @Success 201 {object} models.Brand
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Brand already exists"
// @Router /admin/brands [post]
func CreateBrand(c *gin.Context) {
	var req models.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Brand name is required"))
		return
	}

	brand := models.Brand{
		Name: strings.TrimSpace(req.Name),
		Logo: req.Logo,
	}
	if brand.Name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Brand name is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.StoreGorm.WithContext(ctx).Create(&brand).Error; err != nil {
		if strings.Contains(err.Error(), "23505") {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Brand already exists"))
			return
		}
		log.Printf("[admin.brand.create] failed to create brand: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create brand"))
		return
	}

	catalog_cache.Invalidate()
	c.JSON(http.StatusCreated, brand)
}
