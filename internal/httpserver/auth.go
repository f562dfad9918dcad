package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/btorralba/SEIS739Project/internal/logging"
	"github.com/btorralba/SEIS739Project/internal/models"
	"github.com/btorralba/SEIS739Project/internal/service"
)

func (h *Handler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req models.User
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customerID, err := h.Svc.Login(ctx, req.UserID, req.UserPass)
	if err != nil {
		return httpError(l, "login", err)
	}

	l.Info("login_success")
	return c.JSON(http.StatusOK, service.EchoedID(customerID))
}

func (h *Handler) AddUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.add_user")

	var req models.User
	if err := c.Bind(&req); err != nil {
		l.Warn("add_user_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.AddUser(ctx, &req)
	if err != nil {
		return httpError(l, "add_user", err)
	}

	h.publish(c, l, "user_events", req.UserID, map[string]interface{}{
		"type":       "user_added",
		"customerId": req.CustomerID,
	})
	l.Info("add_user_success")
	return c.JSON(http.StatusOK, resp)
}
