package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/btorralba/SEIS739Project/internal/logging"
	"github.com/btorralba/SEIS739Project/internal/models"
)

func (h *Handler) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get_customer")

	id, err := strconv.Atoi(c.QueryParam("customerID"))
	if err != nil {
		l.Warn("get_customer_failed", "status", 400, "reason", "customerID is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "customerID is not an integer")
	}

	customer, err := h.Svc.GetCustomerByID(ctx, id)
	if err != nil {
		return httpError(l, "get_customer", err)
	}

	return c.JSON(http.StatusOK, customer)
}

func (h *Handler) GetCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get_customers")

	customers, err := h.Svc.GetAllCustomers(ctx)
	if err != nil {
		return httpError(l, "get_customers", err)
	}

	l.Info("get_customers_success", "count", len(customers))
	return c.JSON(http.StatusOK, customers)
}

func (h *Handler) AddCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.add_customer")

	var req models.Customer
	if err := c.Bind(&req); err != nil {
		l.Warn("add_customer_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.AddCustomer(ctx, &req)
	if err != nil {
		return httpError(l, "add_customer", err)
	}

	l.Info("add_customer_success", "customer_sk", req.CustomerID)
	return c.JSON(http.StatusOK, resp)
}
