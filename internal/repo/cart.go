package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
)

func (r *GormRepo) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertCartItem increments the quantity of the (user, product) row with
// a single conditional UPDATE, inserting the snapshot row only when no
// row matched. Two concurrent adds therefore cannot lose an increment.
// The snapshot fields of an existing row are left untouched.
func (r *GormRepo) UpsertCartItem(ctx context.Context, item *models.CartItem) (bool, error) {
	created := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).First(item).Error
		}

		created = true
		return tx.Create(item).Error
	})
	return created, err
}

func (r *GormRepo) UpdateCartItemQuantity(ctx context.Context, itemID uint, quantity uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, itemID).Error; err != nil {
			return err
		}
		item.Quantity = quantity
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteCartItem(ctx context.Context, itemID uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.CartItem{}, itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ClearCart(ctx context.Context, userID string) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
