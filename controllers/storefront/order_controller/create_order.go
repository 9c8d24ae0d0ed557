package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/Nautica-Marine/nautica-store-backend/services"
	"github.com/gin-gonic/gin"
)

func newAssembler() *services.OrderAssembler {
	return services.NewOrderAssembler(
		&services.GormProductStore{DB: config.StoreGorm},
		&services.GormOrderStore{DB: config.StoreGorm},
	)
}

// CreateOrder godoc
// @Summary Submit an order
// @Description Calculates the price from the product base price and selected options, snapshots the product, and persists the order
// @Tags Storefront - Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order details"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 409 {object} models.ApiResponse "Order number collision, resubmit"
// @Failure 500 {object} models.ApiResponse
// @Router /orders [post]
func CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[store.order.create] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := newAssembler().AssembleOrder(ctx, req.ProductID, req.SelectedOptions, req.CustomerInfo)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		case errors.Is(err, services.ErrDuplicateOrderNumber):
			// No automated retry; the customer resubmits.
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Order number collision, please resubmit"))
		default:
			log.Printf("[store.order.create] failed to create order: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		}
		return
	}

	log.Printf("[store.order.create] created order %s for product %d total=%.2f",
		order.OrderNumber, req.ProductID, order.TotalInclVAT)

	c.JSON(http.StatusCreated, order)
}
