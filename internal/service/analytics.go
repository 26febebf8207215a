package service

import (
	"context"

	"github.com/Skotchmaster/sunnyday_shop/internal/repo"
)

type AnalyticsService struct {
	Repo *repo.GormRepo
}

func (s *AnalyticsService) TotalUsers(ctx context.Context) (int64, error) {
	return s.Repo.CountUsers(ctx)
}

func (s *AnalyticsService) TotalOrders(ctx context.Context) (int64, error) {
	return s.Repo.CountOrders(ctx)
}

func (s *AnalyticsService) TotalRevenue(ctx context.Context) (float64, error) {
	return s.Repo.TotalRevenue(ctx)
}
