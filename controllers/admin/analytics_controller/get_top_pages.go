package analytics_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetTopPages godoc
// @Summary Most visited pages
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of pages to return" default(10)
// @Success 200 {array} models.TopPage
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/top-pages [get]
func GetTopPages(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.StorePool.Query(ctx, `
		SELECT path, COUNT(*) AS views
		FROM page_views
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT $1`, limit)
	if err != nil {
		log.Printf("[admin.analytics.toppages] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top pages"))
		return
	}
	defer rows.Close()

	pages := make([]models.TopPage, 0, limit)
	for rows.Next() {
		var page models.TopPage
		if err := rows.Scan(&page.Path, &page.Views); err != nil {
			log.Printf("[admin.analytics.toppages] scan failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top pages"))
			return
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[admin.analytics.toppages] rows error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top pages"))
		return
	}

	c.JSON(http.StatusOK, pages)
}
