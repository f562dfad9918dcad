package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/btorralba/SEIS739Project/internal/models"
	"github.com/btorralba/SEIS739Project/internal/repo"
)

// ApiService routes logical requests to the right repository query
// based on which optional parameters are populated, and shapes the
// results the repositories do not.
type ApiService struct {
	Users     *repo.UserRepo
	Customers *repo.CustomerRepo
	Products  *repo.ProductRepo
	Orders    *repo.OrderRepo
	Shippings *repo.ShippingRepo
	Payments  *repo.PaymentRepo
}

func New(r *repo.Repositories) *ApiService {
	return &ApiService{
		Users:     r.Users,
		Customers: r.Customers,
		Products:  r.Products,
		Orders:    r.Orders,
		Shippings: r.Shippings,
		Payments:  r.Payments,
	}
}

// Login matches the credentials exactly and returns the customer id
// bound to them. An empty match is ErrInvalidCredentials, never a
// store error.
func (s *ApiService) Login(ctx context.Context, userID, userPass string) (int, error) {
	if userID == "" || userPass == "" {
		return 0, fmt.Errorf("%w: userID and userPass are required", ErrValidation)
	}
	user, err := s.Users.FindByCreds(ctx, userID, userPass)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidCredentials
		}
		return 0, fmt.Errorf("login: %w", err)
	}
	return user.CustomerID, nil
}

func (s *ApiService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.Products.FindAll(ctx)
}

func (s *ApiService) GetCustomerByID(ctx context.Context, customerID int) (*models.Customer, error) {
	customer, err := s.Customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

func (s *ApiService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.Customers.FindAll(ctx)
}

// GetProduct dispatches on whichever parameter is populated: a
// non-blank sku wins, otherwise productName. A name shared by several
// products resolves to the first match.
func (s *ApiService) GetProduct(ctx context.Context, sku, productName string) (*models.Product, error) {
	switch {
	case strings.TrimSpace(sku) != "":
		n, err := strconv.Atoi(strings.TrimSpace(sku))
		if err != nil {
			return nil, fmt.Errorf("%w: sku must be an integer", ErrValidation)
		}
		product, err := s.Products.FindBySKU(ctx, n)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: product with sku %d", ErrNotFound, n)
			}
			return nil, fmt.Errorf("get product: %w", err)
		}
		return product, nil
	case strings.TrimSpace(productName) != "":
		products, err := s.Products.FindByName(ctx, productName)
		if err != nil {
			return nil, fmt.Errorf("get product: %w", err)
		}
		if len(products) == 0 {
			return nil, fmt.Errorf("%w: product named %q", ErrNotFound, productName)
		}
		return &products[0], nil
	default:
		return nil, fmt.Errorf("%w: sku or productName is required", ErrValidation)
	}
}

// GetOrders dispatches with precedence customerId > sku > status.
// A status of "*" means every order.
func (s *ApiService) GetOrders(ctx context.Context, customerID, sku, status string) ([]models.Order, error) {
	switch {
	case strings.TrimSpace(customerID) != "":
		n, err := strconv.Atoi(strings.TrimSpace(customerID))
		if err != nil {
			return nil, fmt.Errorf("%w: customerId must be an integer", ErrValidation)
		}
		return s.Orders.FindByCustomerID(ctx, n)
	case strings.TrimSpace(sku) != "":
		n, err := strconv.Atoi(strings.TrimSpace(sku))
		if err != nil {
			return nil, fmt.Errorf("%w: sku must be an integer", ErrValidation)
		}
		return s.Orders.FindBySKU(ctx, n)
	case strings.TrimSpace(status) != "":
		if status == "*" {
			return s.Orders.FindAll(ctx)
		}
		return s.Orders.FindByStatus(ctx, status)
	default:
		return nil, fmt.Errorf("%w: customerId, sku or status is required", ErrValidation)
	}
}

// GetSkuByProduct resolves the sku of the product matching the
// (name, size, color) triple. No match is ErrNotFound.
func (s *ApiService) GetSkuByProduct(ctx context.Context, name, size, color string) (Response, error) {
	if name == "" || size == "" || color == "" {
		return Response{}, fmt.Errorf("%w: name, size and color are required", ErrValidation)
	}
	product, err := s.Products.FindByNameSizeColor(ctx, name, size, color)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Response{}, fmt.Errorf("%w: no product matches name=%q size=%q color=%q", ErrNotFound, name, size, color)
		}
		return Response{}, fmt.Errorf("get sku by product: %w", err)
	}
	return EchoedID(product.SKU), nil
}

// GetShippingAddress returns the first shipping record on file for the
// customer. No record at all is ErrNotFound, not an empty result.
func (s *ApiService) GetShippingAddress(ctx context.Context, customerID int) (*models.Shipping, error) {
	addresses, err := s.Shippings.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get shipping address: %w", err)
	}
	if len(addresses) == 0 {
		return nil, fmt.Errorf("%w: no shipping record for customer %d", ErrNotFound, customerID)
	}
	return &addresses[0], nil
}

func (s *ApiService) AddProduct(ctx context.Context, product *models.Product) (Response, error) {
	if product.SKU == 0 {
		return Response{}, fmt.Errorf("%w: sku is required", ErrValidation)
	}
	if _, err := s.Products.Save(ctx, product); err != nil {
		return Response{}, fmt.Errorf("add product: %w", err)
	}
	return Ack(), nil
}

func (s *ApiService) AddUser(ctx context.Context, user *models.User) (Response, error) {
	if user.UserID == "" || user.UserPass == "" {
		return Response{}, fmt.Errorf("%w: userID and userPass are required", ErrValidation)
	}
	saved, err := s.Users.Save(ctx, user)
	if err != nil {
		return Response{}, fmt.Errorf("add user: %w", err)
	}
	return EchoedID(saved.CustomerID), nil
}

func (s *ApiService) AddCustomer(ctx context.Context, customer *models.Customer) (Response, error) {
	if customer.CustomerID == 0 {
		return Response{}, fmt.Errorf("%w: customerId is required", ErrValidation)
	}
	saved, err := s.Customers.Save(ctx, customer)
	if err != nil {
		return Response{}, fmt.Errorf("add customer: %w", err)
	}
	return EchoedID(saved.CustomerID), nil
}

func (s *ApiService) AddPayment(ctx context.Context, payment *models.Payment) (Response, error) {
	if payment.CardNumber == "" {
		return Response{}, fmt.Errorf("%w: cardNumber is required", ErrValidation)
	}
	if _, err := s.Payments.Save(ctx, payment); err != nil {
		return Response{}, fmt.Errorf("add payment: %w", err)
	}
	return Ack(), nil
}

func (s *ApiService) AddShipping(ctx context.Context, shipping *models.Shipping) (Response, error) {
	if shipping.AddressLine1 == "" {
		return Response{}, fmt.Errorf("%w: addressLine1 is required", ErrValidation)
	}
	saved, err := s.Shippings.Save(ctx, shipping)
	if err != nil {
		return Response{}, fmt.Errorf("add shipping: %w", err)
	}
	return EchoedID(saved.ShippingID), nil
}

func (s *ApiService) AddOrder(ctx context.Context, order *models.Order) (Response, error) {
	if order.SKU == 0 {
		return Response{}, fmt.Errorf("%w: sku is required", ErrValidation)
	}
	if _, err := s.Orders.Save(ctx, order); err != nil {
		return Response{}, fmt.Errorf("add order: %w", err)
	}
	return Ack(), nil
}

// UpdateProduct overwrites price and quantity only. A sku with no row
// behind it is ErrNotFound rather than a silent success.
func (s *ApiService) UpdateProduct(ctx context.Context, sku int, price float64, quantity int) (Response, error) {
	if sku == 0 {
		return Response{}, fmt.Errorf("%w: sku is required", ErrValidation)
	}
	if err := s.Products.UpdatePriceQuantity(ctx, sku, price, quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Response{}, fmt.Errorf("%w: product with sku %d", ErrNotFound, sku)
		}
		return Response{}, fmt.Errorf("update product: %w", err)
	}
	return Ack(), nil
}

// UpdateOrder overwrites status only, keyed by orderSk.
func (s *ApiService) UpdateOrder(ctx context.Context, orderSK int, status string) (Response, error) {
	if orderSK == 0 {
		return Response{}, fmt.Errorf("%w: orderSk is required", ErrValidation)
	}
	if err := s.Orders.UpdateStatus(ctx, orderSK, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Response{}, fmt.Errorf("%w: order %d", ErrNotFound, orderSK)
		}
		return Response{}, fmt.Errorf("update order: %w", err)
	}
	return Ack(), nil
}
