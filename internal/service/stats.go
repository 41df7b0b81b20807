package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vite-gourmand/catering-service/internal/stats"
)

// CounterStore exposes the aggregate queries behind the admin dashboard.
type CounterStore interface {
	CountUsers(ctx context.Context) (int, error)
	CountOrders(ctx context.Context) (int, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
	CountActiveMenus(ctx context.Context) (int, error)
	AverageRating(ctx context.Context) (float64, bool, error)
}

// MongoStats are the analytics counters from the document store.
type MongoStats struct {
	Visits int64 `json:"visites"`
	Orders int64 `json:"commandes"`
}

// AdminStats is the GET /api/admin/stats response shape.
type AdminStats struct {
	Users         int             `json:"utilisateurs"`
	Orders        int             `json:"commandes"`
	Revenue       decimal.Decimal `json:"chiffre_affaires"`
	ActiveMenus   int             `json:"menus_actifs"`
	AverageRating string          `json:"note_moyenne"`
	Mongo         *MongoStats     `json:"mongodb_stats"`
}

// StatsService aggregates the admin dashboard numbers.
type StatsService struct {
	counters         CounterStore
	recorder         stats.Recorder
	analyticsEnabled bool
}

// NewStatsService creates a new stats service. analyticsEnabled reflects
// whether the document store is configured; when false the Mongo block of
// the response stays null.
func NewStatsService(counters CounterStore, recorder stats.Recorder, analyticsEnabled bool) *StatsService {
	return &StatsService{
		counters:         counters,
		recorder:         recorder,
		analyticsEnabled: analyticsEnabled,
	}
}

// Summary computes the dashboard aggregates.
func (s *StatsService) Summary(ctx context.Context) (*AdminStats, error) {
	users, err := s.counters.CountUsers(ctx)
	if err != nil {
		return nil, Internal(err)
	}

	orders, err := s.counters.CountOrders(ctx)
	if err != nil {
		return nil, Internal(err)
	}

	revenue, err := s.counters.Revenue(ctx)
	if err != nil {
		return nil, Internal(err)
	}

	activeMenus, err := s.counters.CountActiveMenus(ctx)
	if err != nil {
		return nil, Internal(err)
	}

	avg, hasReviews, err := s.counters.AverageRating(ctx)
	if err != nil {
		return nil, Internal(err)
	}

	averageRating := "N/A"
	if hasReviews {
		averageRating = fmt.Sprintf("%.1f", avg)
	}

	result := &AdminStats{
		Users:         users,
		Orders:        orders,
		Revenue:       revenue,
		ActiveMenus:   activeMenus,
		AverageRating: averageRating,
	}

	// The document store is optional; losing it degrades the dashboard,
	// it does not break it
	if s.analyticsEnabled {
		result.Mongo = s.mongoCounters(ctx)
	}

	return result, nil
}

func (s *StatsService) mongoCounters(ctx context.Context) *MongoStats {
	visits, err := s.recorder.CountByType(ctx, stats.EventVisit)
	if err != nil {
		logrus.WithError(err).Warn("failed to count visit stats")
		return nil
	}

	orders, err := s.recorder.CountByType(ctx, stats.EventOrder)
	if err != nil {
		logrus.WithError(err).Warn("failed to count order stats")
		return nil
	}

	return &MongoStats{Visits: visits, Orders: orders}
}

// StatCounters adapts the repositories to the CounterStore interface.
type StatCounters struct {
	Users interface {
		Count(ctx context.Context) (int, error)
	}
	Orders interface {
		Count(ctx context.Context) (int, error)
		Revenue(ctx context.Context) (decimal.Decimal, error)
	}
	Menus interface {
		CountActive(ctx context.Context) (int, error)
	}
	Reviews interface {
		AverageRating(ctx context.Context) (float64, bool, error)
	}
}

func (c StatCounters) CountUsers(ctx context.Context) (int, error)  { return c.Users.Count(ctx) }
func (c StatCounters) CountOrders(ctx context.Context) (int, error) { return c.Orders.Count(ctx) }
func (c StatCounters) Revenue(ctx context.Context) (decimal.Decimal, error) {
	return c.Orders.Revenue(ctx)
}
func (c StatCounters) CountActiveMenus(ctx context.Context) (int, error) {
	return c.Menus.CountActive(ctx)
}
func (c StatCounters) AverageRating(ctx context.Context) (float64, bool, error) {
	return c.Reviews.AverageRating(ctx)
}
