package query_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/Nautica-Marine/nautica-store-backend/services"
	"github.com/gin-gonic/gin"
)

// CreateQuery godoc
// @Summary Submit a contact or rental inquiry
// @Tags Storefront - Queries
// @Accept json
// @Produce json
// @Param query body models.QueryRequest true "Query details"
// @Success 201 {object} models.Query
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /queries [post]
func CreateQuery(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name, email, and message are required"))
		return
	}

	query := models.Query{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		query.Phone = &phone
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.StoreGorm.WithContext(ctx).Create(&query).Error; err != nil {
		log.Printf("[store.query.create] failed to create query: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit query"))
		return
	}

	// Alert the shop asynchronously; a mail failure never fails the submission.
	if resendClient := services.NewResendClient(); resendClient != nil {
		go func(q models.Query) {
			if err := resendClient.SendQueryAlertEmail(&q); err != nil {
				log.Printf("[store.query.create] alert email failed for query %d: %v", q.ID, err)
			}
		}(query)
	}

	c.JSON(http.StatusCreated, query)
}
