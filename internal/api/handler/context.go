package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/musicadmin/content-api/internal/api/middleware"
)

// actor names the admin behind a protected request, for audit logs.
// Public routes have no claims and log as "anonymous".
func actor(c echo.Context) string {
	if claims, ok := middleware.ClaimsFrom(c); ok && claims.Username != "" {
		return claims.Username
	}
	return "anonymous"
}
