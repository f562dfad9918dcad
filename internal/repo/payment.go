package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/btorralba/SEIS739Project/internal/models"
)

type PaymentRepo struct {
	DB *gorm.DB
}

func (r *PaymentRepo) Save(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if err := r.DB.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}
