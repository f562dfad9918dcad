package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/btorralba/SEIS739Project/internal/models"
)

type ShippingRepo struct {
	DB *gorm.DB
}

func (r *ShippingRepo) Save(ctx context.Context, shipping *models.Shipping) (*models.Shipping, error) {
	if err := r.DB.WithContext(ctx).Create(shipping).Error; err != nil {
		return nil, err
	}
	return shipping, nil
}

func (r *ShippingRepo) FindByCustomerID(ctx context.Context, customerID int) ([]models.Shipping, error) {
	var addresses []models.Shipping
	if err := r.DB.WithContext(ctx).Where("customer_sk = ?", customerID).Order("shipping_sk ASC").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}
