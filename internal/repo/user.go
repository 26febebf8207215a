package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
)

// UpsertUser updates the profile fields of the row matching
// user.ExternalID, or inserts a new row when none exists. The returned
// flag reports whether a row was created.
func (r *GormRepo) UpsertUser(ctx context.Context, user *models.User) (bool, error) {
	created := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("external_id = ?", user.ExternalID).
			Updates(map[string]any{
				"email":           user.Email,
				"name":            user.Name,
				"profile_picture": user.ProfilePicture,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("external_id = ?", user.ExternalID).First(user).Error
		}

		created = true
		return tx.Create(user).Error
	})
	return created, err
}

func (r *GormRepo) GetUserByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("external_id = ?", externalID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
