package stats

import (
	"context"
	"time"
)

// Revenue counts orders the studio actually earned: confirmed or handed over.
func countsTowardRevenue(status string) bool {
	return status == "CONFIRMED" || status == "DELIVERED"
}

// Service computes the admin dashboard.
type Service interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new stats service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	orders, err := s.repo.ListOrderRecords(ctx)
	if err != nil {
		return nil, err
	}
	pendingAppts, err := s.repo.CountPendingAppointments(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// calendar week starts on Sunday
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &DashboardStats{PendingAppointments: pendingAppts}
	for _, o := range orders {
		if o.Status == "PENDING" {
			stats.PendingOrders++
		}
		if !countsTowardRevenue(o.Status) {
			continue
		}
		if !o.CreatedAt.Before(startOfDay) {
			stats.DailyRevenue += o.Total
		}
		if !o.CreatedAt.Before(startOfWeek) {
			stats.WeeklyRevenue += o.Total
		}
		if !o.CreatedAt.Before(startOfMonth) {
			stats.MonthlyRevenue += o.Total
		}
	}
	return stats, nil
}
