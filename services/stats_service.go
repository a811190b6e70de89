package services

import (
	"context"
	"fmt"
	"time"

	"detailpro-backend/models"
	"detailpro-backend/store"
)

// Stats is the admin dashboard summary. Revenue only counts completed
// bookings; monthly figures cover bookings created since the first instant of
// the current month in server-local time.
type Stats struct {
	TotalBookings     int     `json:"totalBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	CompletedBookings int     `json:"completedBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
	TotalCustomers    int     `json:"totalCustomers"`
}

// StatsService reduces the full booking and customer collections on every
// call. No pagination, no caching; data volumes here don't warrant either.
type StatsService struct {
	store store.Store
	now   func() time.Time
}

func NewStatsService(st store.Store) *StatsService {
	return &StatsService{store: st, now: time.Now}
}

func (s *StatsService) Overview(ctx context.Context) (Stats, error) {
	bookings, err := s.store.AllBookings(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load bookings: %w", err)
	}
	customers, err := s.store.AllCustomers(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load customers: %w", err)
	}

	now := s.now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := Stats{
		TotalBookings:  len(bookings),
		TotalCustomers: len(customers),
	}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingStatusPending:
			stats.PendingBookings++
		case models.BookingStatusCompleted:
			stats.CompletedBookings++
			stats.TotalRevenue += b.TotalCost
			if !b.CreatedAt.Before(firstOfMonth) {
				stats.MonthlyRevenue += b.TotalCost
			}
		}
	}
	return stats, nil
}
