package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bilegt6969/sainto-api/internal/metrics"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Healthz returns 200 if the process is running.
//
// @Summary Liveness check
// @Description Returns 200 if the process is running.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func (*HealthHandler) Healthz(c echo.Context) error {
	metrics.HealthzUp.Set(1)
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz returns 200 once the server is accepting traffic. The service
// holds no database connection; readiness tracks process state only.
//
// @Summary Readiness check
// @Description Returns 200 once the server is accepting traffic.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /readyz [get]
func (*HealthHandler) Readyz(c echo.Context) error {
	metrics.ReadyzUp.Set(1)
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
