package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/musicadmin/content-api/internal/api/metrics"
	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/core/ports"
)

// ResourceHandler serves the CRUD routes of one content collection.
type ResourceHandler[R domain.Record, C any, U any] struct {
	name    string
	service ports.ResourceService[R, C, U]
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewResourceHandler builds the handler for the collection mounted at
// /api/<name>.
func NewResourceHandler[R domain.Record, C any, U any](
	name string,
	service ports.ResourceService[R, C, U],
	m *metrics.Metrics,
	logger zerolog.Logger,
) *ResourceHandler[R, C, U] {
	return &ResourceHandler[R, C, U]{
		name:    name,
		service: service,
		metrics: m,
		logger:  logger.With().Str("resource", name).Logger(),
	}
}

// ErrorResponse is the error envelope every failed request renders.
type ErrorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// List handles GET /api/<resource>.
func (h *ResourceHandler[R, C, U]) List(c echo.Context) error {
	records, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Get handles GET /api/<resource>/:id.
func (h *ResourceHandler[R, C, U]) Get(c echo.Context) error {
	record, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Create handles POST /api/<resource>.
func (h *ResourceHandler[R, C, U]) Create(c echo.Context) error {
	var req C
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	h.written(c, "create", record.Identity())
	return c.JSON(http.StatusCreated, record)
}

// Update handles PUT /api/<resource>/:id.
func (h *ResourceHandler[R, C, U]) Update(c echo.Context) error {
	var req U
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	record, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}

	h.written(c, "update", record.Identity())
	return c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /api/<resource>/:id.
func (h *ResourceHandler[R, C, U]) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.written(c, "delete", id)
	return c.JSON(http.StatusOK, messageResponse{Message: h.service.Label() + " deleted successfully"})
}

func (h *ResourceHandler[R, C, U]) written(c echo.Context, op, id string) {
	h.metrics.ContentWritesTotal.WithLabelValues(h.name, op).Inc()
	h.logger.Info().
		Str("actor", actor(c)).
		Str("operation", op).
		Str("id", id).
		Msg("content changed")
}
