package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /api/health and GET /api/test.
// Both return 200 immediately and never touch the stores.
type HealthHandler struct {
	baseURL     string
	environment string
	endpoints   []string
	now         func() time.Time
}

func NewHealthHandler(baseURL, environment string, endpoints []string) *HealthHandler {
	return &HealthHandler{
		baseURL:     baseURL,
		environment: environment,
		endpoints:   endpoints,
		now:         time.Now,
	}
}

type healthResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	BaseURL   string   `json:"baseUrl"`
	Endpoints []string `json:"endpoints"`
}

type testResponse struct {
	Message     string `json:"message"`
	APIURL      string `json:"apiUrl"`
	Environment string `json:"environment"`
}

// Liveness reports that the process is up and lists the public endpoints.
//
// @Summary      Health check
// @Tags         ops
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "OK",
		Message:   "Server is running!",
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
		BaseURL:   h.baseURL,
		Endpoints: h.endpoints,
	})
}

// Test is a smoke endpoint for deploy checks.
//
// @Summary      Smoke test
// @Tags         ops
// @Produce      json
// @Success      200  {object}  testResponse
// @Router       /api/test [get]
func (h *HealthHandler) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, testResponse{
		Message:     "Backend is working perfectly!",
		APIURL:      h.baseURL,
		Environment: h.environment,
	})
}

// PingFunc checks one dependency.
type PingFunc func(ctx context.Context) error

// ReadinessHandler handles GET /api/health/ready.
// Only MongoDB decides readiness; Redis is reported when configured.
type ReadinessHandler struct {
	mongo PingFunc
	redis PingFunc
}

// NewReadinessHandler takes a nil redis check when Redis is not configured.
func NewReadinessHandler(mongo, redis PingFunc) *ReadinessHandler {
	return &ReadinessHandler{mongo: mongo, redis: redis}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness pings the stores.
//
// @Summary      Readiness probe
// @Tags         ops
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /api/health/ready [get]
func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- MongoDB ping ---
	if err := h.mongo(ctx); err != nil {
		deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["mongodb"] = dependencyStatus{Status: "ok"}
	}

	// --- Redis ping ---
	// Redis only backs contact dedup; an outage is reported but does not
	// take the instance out of rotation.
	switch {
	case h.redis == nil:
		deps["redis"] = dependencyStatus{Status: "disabled"}
	default:
		if err := h.redis(ctx); err != nil {
			deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		} else {
			deps["redis"] = dependencyStatus{Status: "ok"}
		}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
