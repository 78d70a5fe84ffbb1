package stats

import "time"

// DashboardStats is the admin dashboard read model, recomputed on every
// request rather than persisted.
type DashboardStats struct {
	DailyRevenue        float64 `json:"daily_revenue"`
	WeeklyRevenue       float64 `json:"weekly_revenue"`
	MonthlyRevenue      float64 `json:"monthly_revenue"`
	PendingAppointments int     `json:"pending_appointments"`
	PendingOrders       int     `json:"pending_orders"`
}

// OrderRecord is the slice of an order the aggregation needs.
type OrderRecord struct {
	Status    string
	Total     float64
	CreatedAt time.Time
}
