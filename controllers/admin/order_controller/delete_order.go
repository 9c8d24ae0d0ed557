package order_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// DeleteOrder godoc
// @Summary Delete an order
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /admin/orders/{id} [delete]
func DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.StoreGorm.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("[admin.order.delete] failed to delete order %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete order"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order deleted successfully", nil))
}
