package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/musicadmin/content-api/internal/api/metrics"
	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	metrics     *metrics.Metrics
}

func NewAuthHandler(authService ports.AuthService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{authService: authService, metrics: m}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

// Login authenticates the admin and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/auth/login [post]
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		h.metrics.LoginAttemptsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return err
	}
	h.metrics.LoginAttemptsTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		User:    toUserResponse(user),
	})
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}
