package query_controller

import (
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetQueries godoc
// @Summary List customer queries
// @Description Returns contact and rental queries, newest first
// @Tags Admin - Queries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Query
// @Failure 500 {object} models.ApiResponse
// @Router /admin/queries [get]
func GetQueries(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var queries []models.Query
	if err := config.StoreGorm.WithContext(ctx).Order("created_at DESC").Find(&queries).Error; err != nil {
		log.Printf("[admin.query.list] failed to fetch queries: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch queries"))
		return
	}

	c.JSON(http.StatusOK, queries)
}
