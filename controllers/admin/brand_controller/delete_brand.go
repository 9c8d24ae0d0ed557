package brand_controller

import (
	"log"
	"net/http"
	"strconv"

	catalog_cache "github.com/Nautica-Marine/nautica-store-backend/cache"
	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// DeleteBrand godoc
// @Summary Delete a brand
// @Description Deletes a brand. Products keep their category string and remain browsable.
// @Tags Admin - Brands
// @Produce json
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Brand not found"
// @Router /admin/brands/{id} [delete]
func DeleteBrand(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid brand ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.StoreGorm.WithContext(ctx).Delete(&models.Brand{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("[admin.brand.delete] failed to delete brand %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete brand"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Brand not found"))
		return
	}

	catalog_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand deleted successfully", nil))
}
