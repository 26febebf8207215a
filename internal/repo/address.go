package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
)

func (r *GormRepo) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	addresses := make([]models.Address, 0)
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, id ASC").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// CreateAddress keeps at most one default per user: the first address
// becomes the default, and a new default demotes the previous one.
func (r *GormRepo) CreateAddress(ctx context.Context, addr *models.Address) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Address{}).Where("user_id = ?", addr.UserID).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			addr.IsDefault = true
		} else if addr.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ? AND is_default = ?", addr.UserID, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}

		return tx.Create(addr).Error
	})
}

func (r *GormRepo) DeleteAddress(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Address{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
