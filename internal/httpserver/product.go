package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/btorralba/SEIS739Project/internal/logging"
	"github.com/btorralba/SEIS739Project/internal/models"
)

func (h *Handler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	products, err := h.Svc.GetAllProducts(ctx)
	if err != nil {
		return httpError(l, "get_products", err)
	}

	l.Info("get_products_success", "count", len(products))
	return c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	product, err := h.Svc.GetProduct(ctx, c.QueryParam("sku"), c.QueryParam("productName"))
	if err != nil {
		return httpError(l, "get_product", err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *Handler) GetSkuByProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_sku")

	resp, err := h.Svc.GetSkuByProduct(ctx, c.QueryParam("name"), c.QueryParam("size"), c.QueryParam("color"))
	if err != nil {
		return httpError(l, "get_sku", err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.add_product")

	var req models.Product
	if err := c.Bind(&req); err != nil {
		l.Warn("add_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.AddProduct(ctx, &req)
	if err != nil {
		return httpError(l, "add_product", err)
	}

	h.publish(c, l, "product_events", strconv.Itoa(req.SKU), map[string]interface{}{
		"type": "product_added",
		"sku":  req.SKU,
		"name": req.ProductName,
	})
	l.Info("add_product_success", "sku", req.SKU)
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	var req models.Product
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.UpdateProduct(ctx, req.SKU, req.Price, req.Quantity)
	if err != nil {
		return httpError(l, "update_product", err)
	}

	h.publish(c, l, "product_events", strconv.Itoa(req.SKU), map[string]interface{}{
		"type": "product_updated",
		"sku":  req.SKU,
	})
	l.Info("update_product_success", "sku", req.SKU)
	return c.JSON(http.StatusOK, resp)
}
