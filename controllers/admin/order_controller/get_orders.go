package order_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetOrders godoc
// @Summary List all orders
// @Description Returns all orders, newest first. Optional status filter.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(pending, confirmed, completed, cancelled)
// @Success 200 {array} models.Order
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.StoreGorm.WithContext(ctx).Order("date DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		log.Printf("[admin.order.list] failed to fetch orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get a single order
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /admin/orders/{id} [get]
func GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.StoreGorm.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order.get] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	c.JSON(http.StatusOK, order)
}
