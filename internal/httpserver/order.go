package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/btorralba/SEIS739Project/internal/logging"
	"github.com/btorralba/SEIS739Project/internal/models"
)

func (h *Handler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	orders, err := h.Svc.GetOrders(ctx, c.QueryParam("customerId"), c.QueryParam("sku"), c.QueryParam("status"))
	if err != nil {
		return httpError(l, "get_orders", err)
	}

	l.Info("get_orders_success", "count", len(orders))
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) AddOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.add_order")

	var req models.Order
	if err := c.Bind(&req); err != nil {
		l.Warn("add_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.AddOrder(ctx, &req)
	if err != nil {
		return httpError(l, "add_order", err)
	}

	h.publish(c, l, "order_events", strconv.Itoa(req.OrderSK), map[string]interface{}{
		"type":    "order_added",
		"orderSk": req.OrderSK,
		"sku":     req.SKU,
	})
	l.Info("add_order_success", "order_sk", req.OrderSK)
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_order")

	var req models.Order
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.UpdateOrder(ctx, req.OrderSK, req.Status)
	if err != nil {
		return httpError(l, "update_order", err)
	}

	h.publish(c, l, "order_events", strconv.Itoa(req.OrderSK), map[string]interface{}{
		"type":    "order_updated",
		"orderSk": req.OrderSK,
		"status":  req.Status,
	})
	l.Info("update_order_success", "order_sk", req.OrderSK)
	return c.JSON(http.StatusOK, resp)
}
