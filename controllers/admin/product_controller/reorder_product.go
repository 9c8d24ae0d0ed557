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

var errAtBoundary = errors.New("no adjacent product")

// ReorderProduct godoc
// @Summary Move a product up or down in the catalog
// @Description Swaps display order with the adjacent product. Both writes happen in one transaction so concurrent reorders cannot half-apply.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param payload body models.ReorderProductRequest true "Direction"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id}/order [patch]
func ReorderProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.ReorderProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, `Invalid direction. Use "up" or "down"`))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err = config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Product
		if err := tx.Select("id, display_order").First(&current, "id = ?", id).Error; err != nil {
			return err
		}

		var sibling models.Product
		query := tx.Select("id, display_order")
		if req.Direction == "up" {
			query = query.Where("display_order < ?", current.DisplayOrder).Order("display_order DESC")
		} else {
			query = query.Where("display_order > ?", current.DisplayOrder).Order("display_order ASC")
		}
		if err := query.First(&sibling).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errAtBoundary
			}
			return err
		}

		if err := tx.Model(&models.Product{}).Where("id = ?", current.ID).
			Update("display_order", sibling.DisplayOrder).Error; err != nil {
			return err
		}
		return tx.Model(&models.Product{}).Where("id = ?", sibling.ID).
			Update("display_order", current.DisplayOrder).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	case errors.Is(err, errAtBoundary):
		if req.Direction == "up" {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Product is already at the top", nil))
		} else {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Product is already at the bottom", nil))
		}
		return
	case err != nil:
		log.Printf("[admin.product.reorder] failed to reorder product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product order"))
		return
	}

	catalog_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product order updated successfully", nil))
}
