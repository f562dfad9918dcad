package repo

import "gorm.io/gorm"

// Repositories bundles the per-entity repositories over a single gorm
// handle so callers can inject them as one unit.
type Repositories struct {
	Users     *UserRepo
	Customers *CustomerRepo
	Products  *ProductRepo
	Orders    *OrderRepo
	Shippings *ShippingRepo
	Payments  *PaymentRepo
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:     &UserRepo{DB: db},
		Customers: &CustomerRepo{DB: db},
		Products:  &ProductRepo{DB: db},
		Orders:    &OrderRepo{DB: db},
		Shippings: &ShippingRepo{DB: db},
		Payments:  &PaymentRepo{DB: db},
	}
}
