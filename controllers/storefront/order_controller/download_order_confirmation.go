package order_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/Nautica-Marine/nautica-store-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DownloadOrderConfirmation godoc
// @Summary Download order confirmation PDF
// @Description Renders the confirmation document for an order, addressed by order number
// @Tags Storefront - Orders
// @Produce octet-stream
// @Param orderNumber path string true "Order number (ORD-...)"
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse
// @Router /orders/{orderNumber}/confirmation [get]
func DownloadOrderConfirmation(c *gin.Context) {
	orderNumber := c.Param("orderNumber")
	log.Printf("[store.order.confirmation] request for order %s", orderNumber)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.StoreGorm.WithContext(ctx).
		First(&order, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[store.order.confirmation] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	pdfBuffer, err := services.GenerateOrderConfirmationPDF(&order)
	if err != nil {
		log.Printf("[store.order.confirmation] PDF generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate PDF"))
		return
	}

	filename := fmt.Sprintf("order-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
