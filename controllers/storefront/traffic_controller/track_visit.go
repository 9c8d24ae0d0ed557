package traffic_controller

import (
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// TrackVisit godoc
// @Summary Record a page view
// @Description Called by public pages on load; feeds the admin traffic analytics
// @Tags Storefront - Traffic
// @Accept json
// @Produce json
// @Param visit body models.TrackVisitRequest true "Visit details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /track [post]
func TrackVisit(c *gin.Context) {
	var req models.TrackVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Path is required"))
		return
	}

	view := models.PageView{
		Path:      req.Path,
		Referrer:  req.Referrer,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.StoreGorm.WithContext(ctx).Create(&view).Error; err != nil {
		// Tracking failures are invisible to visitors
		log.Printf("[store.track] failed to record visit: %v", err)
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Visit recorded", nil))
}
