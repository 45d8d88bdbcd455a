package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/musicadmin/content-api/internal/api/metrics"
	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/core/ports"
)

// ContactSubmitter accepts public contact form posts.
type ContactSubmitter interface {
	Submit(ctx context.Context, in ports.ContactInput) (*domain.ContactSubmission, bool, error)
}

// ContactHandler serves the public side of the contact collection. The admin
// routes use a ResourceHandler over the same service.
type ContactHandler struct {
	service ContactSubmitter
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewContactHandler(service ContactSubmitter, m *metrics.Metrics, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{service: service, metrics: m, logger: logger}
}

// Submit handles POST /api/contact.
//
// @Summary      Submit the contact form
// @Description  Stores a contact submission. A repeated post of the same message within the dedup window returns the earlier submission.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      ports.ContactInput  true  "Contact form"
// @Success      201   {object}  domain.ContactSubmission
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ports.ContactInput
	if err := c.Bind(&req); err != nil {
		h.metrics.ContactSubmissionsTotal.WithLabelValues(metrics.ResultRejected).Inc()
		return err
	}
	if err := c.Validate(&req); err != nil {
		h.metrics.ContactSubmissionsTotal.WithLabelValues(metrics.ResultRejected).Inc()
		return err
	}

	submission, replayed, err := h.service.Submit(c.Request().Context(), req)
	if err != nil {
		h.metrics.ContactSubmissionsTotal.WithLabelValues(metrics.ResultRejected).Inc()
		return err
	}

	result := metrics.ResultStored
	if replayed {
		result = metrics.ResultReplayed
	}
	h.metrics.ContactSubmissionsTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusCreated, submission)
}
