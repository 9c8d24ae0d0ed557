package product_controller

import (
	"log"
	"net/http"
	"strconv"

	catalog_cache "github.com/Nautica-Marine/nautica-store-backend/cache"
	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Deletes a product. Existing orders keep their snapshot and are not affected.
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.StoreGorm.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("[admin.product.delete] failed to delete product %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	catalog_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}
