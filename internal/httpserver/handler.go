package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/btorralba/SEIS739Project/internal/mykafka"
	"github.com/btorralba/SEIS739Project/internal/service"
)

type Handler struct {
	Svc      *service.ApiService
	Producer *mykafka.Producer
}

// publish sends a mutation event; a missing or failing producer is
// logged and never fails the request.
func (h *Handler) publish(c echo.Context, l *slog.Logger, topic, key string, event map[string]interface{}) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, topic, key, event); err != nil {
		l.Error("kafka_publish_error", "topic", topic, "error", err)
	}
}

// httpError maps the service sentinels onto externally visible failure
// signals; anything unmapped is a store failure.
func httpError(l *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(op+"_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		l.Warn(op+"_failed", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrNotFound):
		l.Warn(op+"_failed", "status", 404, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		l.Error(op+"_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "store error")
	}
}
