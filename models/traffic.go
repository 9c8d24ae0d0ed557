package models

import "time"

// PageView is one recorded visit to a public page.
type PageView struct {
	ID        int64     `json:"id,string" gorm:"primaryKey;autoIncrement"`
	Path      string    `json:"path" gorm:"not null;index"`
	Referrer  string    `json:"referrer"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	VisitedAt time.Time `json:"visitedAt" gorm:"autoCreateTime;index"`
}

func (PageView) TableName() string {
	return "page_views"
}

type TrackVisitRequest struct {
	Path     string `json:"path" binding:"required"`
	Referrer string `json:"referrer"`
}

// ═══════════════════════════════════════════════════════════
// Analytics Response Models
// ═══════════════════════════════════════════════════════════

type TrafficOverview struct {
	TotalViews           int64   `json:"total_views"`
	CurrentMonthViews    int64   `json:"current_month_views"`
	LastMonthViews       int64   `json:"last_month_views"`
	ViewsGrowthPercent   float64 `json:"views_growth_percent"`
	TotalOrders          int64   `json:"total_orders"`
	PendingOrders        int64   `json:"pending_orders"`
	TotalQueries         int64   `json:"total_queries"`
	CurrentMonthRevenue  float64 `json:"current_month_revenue"`
	RevenueGrowthPercent float64 `json:"revenue_growth_percent"`
}

type DailyVisits struct {
	Day   time.Time `json:"day"`
	Views int64     `json:"views"`
}

type TopPage struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}
