package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/btorralba/SEIS739Project/internal/models"
)

type CustomerRepo struct {
	DB *gorm.DB
}

// Save upserts by customer_sk; the id is supplied by the caller.
func (r *CustomerRepo) Save(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *CustomerRepo) FindAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.DB.WithContext(ctx).Order("customer_sk ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepo) FindByID(ctx context.Context, customerID int) (*models.Customer, error) {
	customer := models.Customer{}
	if err := r.DB.WithContext(ctx).Where("customer_sk = ?", customerID).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
