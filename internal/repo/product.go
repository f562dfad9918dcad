package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/btorralba/SEIS739Project/internal/models"
)

type ProductRepo struct {
	DB *gorm.DB
}

// Save upserts by sku; the sku is a natural key supplied by the caller.
func (r *ProductRepo) Save(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

func (r *ProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Order("sku ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) FindBySKU(ctx context.Context, sku int) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).Where("sku = ?", sku).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByName returns every product with the given name; the name is not
// unique, so results come back ordered by sku to keep "first match"
// deterministic.
func (r *ProductRepo) FindByName(ctx context.Context, productName string) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Where("product_name = ?", productName).Order("sku ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) FindByNameSizeColor(ctx context.Context, productName, size, color string) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).
		Where("product_name = ? AND size = ? AND color = ?", productName, size, color).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdatePriceQuantity overwrites price and quantity only, keyed by sku.
// Updating a sku that does not exist is reported as ErrRecordNotFound.
func (r *ProductRepo) UpdatePriceQuantity(ctx context.Context, sku int, price float64, quantity int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).Where("sku = ?", sku).
			Updates(map[string]interface{}{"price": price, "quantity": quantity})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
