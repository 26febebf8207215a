package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
)

// CreateOrder inserts the order row and all its line items in one
// transaction, so a failed line item rolls the whole order back.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepo) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
