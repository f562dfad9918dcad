package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/btorralba/SEIS739Project/internal/logging"
	"github.com/btorralba/SEIS739Project/internal/models"
)

func (h *Handler) GetShippingAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "shipping.get_address")

	id, err := strconv.Atoi(c.QueryParam("customerID"))
	if err != nil {
		l.Warn("get_shipping_failed", "status", 400, "reason", "customerID is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "customerID is not an integer")
	}

	address, err := h.Svc.GetShippingAddress(ctx, id)
	if err != nil {
		return httpError(l, "get_shipping", err)
	}

	return c.JSON(http.StatusOK, address)
}

func (h *Handler) AddShipping(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "shipping.add_shipping")

	var req models.Shipping
	if err := c.Bind(&req); err != nil {
		l.Warn("add_shipping_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.AddShipping(ctx, &req)
	if err != nil {
		return httpError(l, "add_shipping", err)
	}

	l.Info("add_shipping_success", "shipping_sk", req.ShippingID)
	return c.JSON(http.StatusOK, resp)
}
