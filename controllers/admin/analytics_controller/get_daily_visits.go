package analytics_controller

import (
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetDailyVisits godoc
// @Summary Page views per day
// @Description Returns one row per day for the last 30 days, including zero-view days
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DailyVisits
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/daily [get]
func GetDailyVisits(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.StorePool.Query(ctx, `
		SELECT d.day, COALESCE(COUNT(pv.id), 0)
		FROM generate_series(
			date_trunc('day', now()) - interval '29 days',
			date_trunc('day', now()),
			interval '1 day') AS d(day)
		LEFT JOIN page_views pv ON date_trunc('day', pv.visited_at) = d.day
		GROUP BY d.day
		ORDER BY d.day ASC`)
	if err != nil {
		log.Printf("[admin.analytics.daily] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch daily visits"))
		return
	}
	defer rows.Close()

	visits := make([]models.DailyVisits, 0, 30)
	for rows.Next() {
		var day models.DailyVisits
		if err := rows.Scan(&day.Day, &day.Views); err != nil {
			log.Printf("[admin.analytics.daily] scan failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch daily visits"))
			return
		}
		visits = append(visits, day)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[admin.analytics.daily] rows error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch daily visits"))
		return
	}

	c.JSON(http.StatusOK, visits)
}
