package product_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	catalog_cache "github.com/Nautica-Marine/nautica-store-backend/cache"
	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Full update of a product; display order is preserved when not supplied
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.ProductRequest true "Product details"
// @Success 200 {object} models.Product
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id} [put]
func UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.product.update] bad request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	product, ok := productFromRequest(c, &req)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.Product
	if err := config.StoreGorm.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[admin.product.update] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if req.DisplayOrder != nil {
		product.DisplayOrder = *req.DisplayOrder
	} else {
		product.DisplayOrder = existing.DisplayOrder
	}

	if err := config.StoreGorm.WithContext(ctx).Save(product).Error; err != nil {
		log.Printf("[admin.product.update] failed to update product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	catalog_cache.Invalidate()
	c.JSON(http.StatusOK, product)
}
