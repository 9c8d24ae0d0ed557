package order_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Writes only the status column; concurrent updates are last-write-wins
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param payload body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status. Use pending, confirmed, completed or cancelled"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.StoreGorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", req.Status)
	if result.Error != nil {
		log.Printf("[admin.order.status] failed to update order %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order status"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	log.Printf("[admin.order.status] order %d set to %s", id, req.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", gin.H{"status": req.Status}))
}
