package repo

import (
	"context"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
)

func (r *GormRepo) CountUsers(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormRepo) CountOrders(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// TotalRevenue sums total_amount over completed orders only. Zero
// completed orders yields 0, not an error.
func (r *GormRepo) TotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	if err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ?", models.OrderStatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error; err != nil {
		return 0, err
	}
	return revenue, nil
}
