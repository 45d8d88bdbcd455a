package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/pkg/security"
)

const (
	claimsKey   = "claims"
	usernameKey = "username"
)

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*security.Claims, error)
}

// Auth validates the bearer token and injects its claims into the context.
// Every rejection carries the same 401 body so callers cannot tell a missing
// token from a forged or expired one.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return notAuthorized()
			}

			token := strings.TrimSpace(parts[1])
			if token == "" {
				return notAuthorized()
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return notAuthorized()
			}

			c.Set(claimsKey, claims)
			c.Set(usernameKey, claims.Username)

			return next(c)
		}
	}
}

// ClaimsFrom returns the claims injected by Auth, if the route is protected.
func ClaimsFrom(c echo.Context) (*security.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*security.Claims)
	return claims, ok && claims != nil
}

func notAuthorized() error {
	return &echo.HTTPError{
		Code:     http.StatusUnauthorized,
		Message:  "Not authorized",
		Internal: domain.ErrUnauthorized,
	}
}
