package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/btorralba/SEIS739Project/internal/logging"
	"github.com/btorralba/SEIS739Project/internal/models"
)

func (h *Handler) AddPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.add_payment")

	// The legacy clients still send a cvv field; it is accepted here
	// and dropped, never persisted.
	var req struct {
		models.Payment
		CVV string `json:"cvv"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_payment_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.AddPayment(ctx, &req.Payment)
	if err != nil {
		return httpError(l, "add_payment", err)
	}

	l.Info("add_payment_success", "customer_sk", req.CustomerID)
	return c.JSON(http.StatusOK, resp)
}
