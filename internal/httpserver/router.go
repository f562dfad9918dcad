package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type Deps struct {
	DB      *gorm.DB
	Handler *Handler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	h := d.Handler
	api := e.Group("/api")

	api.POST("/login", h.Login)

	api.GET("/products", h.GetProducts)
	api.GET("/product", h.GetProduct)
	api.GET("/product/sku", h.GetSkuByProduct)

	api.GET("/customers", h.GetCustomers)
	api.GET("/customer", h.GetCustomer)

	api.GET("/ordersByParam", h.GetOrders)
	api.GET("/shippingAddressByCustomerId", h.GetShippingAddress)

	add := api.Group("/add")
	add.POST("/product", h.AddProduct)
	add.POST("/user", h.AddUser)
	add.POST("/customer", h.AddCustomer)
	add.POST("/payment", h.AddPayment)
	add.POST("/shipping", h.AddShipping)
	add.POST("/order", h.AddOrder)

	update := api.Group("/update")
	update.POST("/product", h.UpdateProduct)
	update.POST("/order", h.UpdateOrder)
}
