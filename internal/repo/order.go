package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/btorralba/SEIS739Project/internal/models"
)

type OrderRepo struct {
	DB *gorm.DB
}

func (r *OrderRepo) Save(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepo) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Order("order_sk ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) FindByCustomerID(ctx context.Context, customerID int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Where("customer_sk = ?", customerID).Order("order_sk ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) FindBySKU(ctx context.Context, sku int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Where("sku = ?", sku).Order("order_sk ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) FindByStatus(ctx context.Context, status string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Where("status = ?", status).Order("order_sk ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus overwrites status only, keyed by order_sk. Updating an
// order that does not exist is reported as ErrRecordNotFound.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderSK int, status string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).Where("order_sk = ?", orderSK).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
