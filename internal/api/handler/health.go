package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/csecompass/catalog/internal/core/ports"
)

// HealthHandler handles GET /health, the liveness check.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness godoc
//
// @Summary  Liveness check
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready, the readiness check.
// A failing critical dependency (the record source) makes the service not
// ready. A failing optional one (the snapshot cache) only reports degraded,
// since requests fall through to the source.
type HealthDependenciesHandler struct {
	critical map[string]ports.Pinger
	optional map[string]ports.Pinger
	timeout  time.Duration
}

func NewHealthDependenciesHandler(critical, optional map[string]ports.Pinger) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		critical: critical,
		optional: optional,
		timeout:  3 * time.Second,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness godoc
//
// @Summary  Readiness check
// @Tags     health
// @Produce  json
// @Success  200  {object}  readinessResponse
// @Failure  503  {object}  readinessResponse
// @Router   /health/ready [get]
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deps := make(map[string]dependencyStatus, len(h.critical)+len(h.optional))
	criticalOK := ping(ctx, h.critical, deps)
	optionalOK := ping(ctx, h.optional, deps)

	status := "ok"
	httpStatus := http.StatusOK
	switch {
	case !criticalOK:
		status = "unavailable"
		httpStatus = http.StatusServiceUnavailable
	case !optionalOK:
		status = "degraded"
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}

// ping records the status of every pinger in deps and reports whether all
// of them answered.
func ping(ctx context.Context, pingers map[string]ports.Pinger, deps map[string]dependencyStatus) bool {
	healthy := true
	for name, p := range pingers {
		if err := p.Ping(ctx); err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		deps[name] = dependencyStatus{Status: "ok"}
	}
	return healthy
}
