package brand_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	catalog_cache "github.com/Nautica-Marine/nautica-store-backend/cache"
	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateBrand godoc
// @Summary Update a brand
// @Tags Admin - Brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Param brand body models.BrandRequest true "Brand details"
// @Success 200 {object} models.Brand
// @Failure 404 {object} models.ApiResponse "Brand not found"
// @Router /admin/brands/{id} [put]
func UpdateBrand(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid brand ID"))
		return
	}

	var req models.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Brand name is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var brand models.Brand
	if err := config.StoreGorm.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Brand not found"))
			return
		}
		log.Printf("[admin.brand.update] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update brand"))
		return
	}

	brand.Name = strings.TrimSpace(req.Name)
	brand.Logo = req.Logo

	if err := config.StoreGorm.WithContext(ctx).Save(&brand).Error; err != nil {
		if strings.Contains(err.Error(), "23505") {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Brand already exists"))
			return
		}
		log.Printf("[admin.brand.update] failed to update brand %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update brand"))
		return
	}

	catalog_cache.Invalidate()
	c.JSON(http.StatusOK, brand)
}
