package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/btorralba/SEIS739Project/internal/models"
)

type UserRepo struct {
	DB *gorm.DB
}

func (r *UserRepo) Save(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByCreds is a plain equality match against the stored credentials;
// the legacy store keeps passwords as-is and interop requires matching
// them as-is.
func (r *UserRepo) FindByCreds(ctx context.Context, userID, userPass string) (*models.User, error) {
	user := models.User{}
	if err := r.DB.WithContext(ctx).Where("user_id = ? AND user_pass = ?", userID, userPass).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
