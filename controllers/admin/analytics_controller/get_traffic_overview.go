package analytics_controller

import (
	"context"
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetTrafficOverview godoc
// @Summary Dashboard overview counters
// @Description Aggregates page views, orders, queries and revenue with month-over-month growth
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TrafficOverview
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/overview [get]
func GetTrafficOverview(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var overview models.TrafficOverview

	err := config.StorePool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE visited_at >= date_trunc('month', now())),
			COUNT(*) FILTER (WHERE visited_at >= date_trunc('month', now()) - interval '1 month'
			                   AND visited_at <  date_trunc('month', now()))
		FROM page_views`).
		Scan(&overview.TotalViews, &overview.CurrentMonthViews, &overview.LastMonthViews)
	if err != nil {
		log.Printf("[admin.analytics.overview] page view counts failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}
	overview.ViewsGrowthPercent = growthPercent(overview.LastMonthViews, overview.CurrentMonthViews)

	var lastMonthRevenue float64
	err = config.StorePool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COALESCE(SUM(total_incl_vat) FILTER (WHERE date >= date_trunc('month', now())), 0),
			COALESCE(SUM(total_incl_vat) FILTER (WHERE date >= date_trunc('month', now()) - interval '1 month'
			                                       AND date <  date_trunc('month', now())), 0)
		FROM orders`).
		Scan(&overview.TotalOrders, &overview.PendingOrders, &overview.CurrentMonthRevenue, &lastMonthRevenue)
	if err != nil {
		log.Printf("[admin.analytics.overview] order counts failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}
	if lastMonthRevenue > 0 {
		overview.RevenueGrowthPercent = (overview.CurrentMonthRevenue - lastMonthRevenue) / lastMonthRevenue * 100
	} else if overview.CurrentMonthRevenue > 0 {
		overview.RevenueGrowthPercent = 100
	}

	if err := countQueries(ctx, &overview.TotalQueries); err != nil {
		log.Printf("[admin.analytics.overview] query count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	c.JSON(http.StatusOK, overview)
}

func countQueries(ctx context.Context, dest *int64) error {
	return config.StorePool.QueryRow(ctx, `SELECT COUNT(*) FROM queries`).Scan(dest)
}

func growthPercent(previous, current int64) float64 {
	if previous > 0 {
		return float64(current-previous) / float64(previous) * 100
	}
	if current > 0 {
		return 100
	}
	return 0
}
