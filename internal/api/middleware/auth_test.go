package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/musicadmin/content-api/internal/core/domain"
	"github.com/musicadmin/content-api/internal/pkg/security"
)

const secret = "secret"

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(security.NewTokenIssuer(secret, time.Hour))(func(c echo.Context) error {
		called = true
		claims, ok := ClaimsFrom(c)
		if !ok {
			t.Fatalf("claims not set")
		}
		if c.Get("username") != claims.Username {
			t.Fatalf("username not set")
		}
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, err, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := security.NewTokenIssuer(secret, time.Hour).Issue("65f0c0ffee", "admin")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	for _, scheme := range []string{"Bearer ", "bearer "} {
		rec, err, called := runAuth(t, scheme+token)
		if err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if !called {
			t.Fatalf("next not called")
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}
}

func TestAuthMiddleware_RejectionsAreUniform(t *testing.T) {
	expired, err := security.NewTokenIssuer(secret, time.Hour).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
		Issue("65f0c0ffee", "admin")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	foreign, err := security.NewTokenIssuer("other-secret", time.Hour).Issue("65f0c0ffee", "admin")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id": "65f0c0ffee", "username": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token abc",
		"no token":       "Bearer",
		"blank token":    "Bearer   ",
		"garbage":        "Bearer not-a-token",
		"expired":        "Bearer " + expired,
		"foreign secret": "Bearer " + foreign,
		"alg none":       "Bearer " + unsigned,
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec, err, called := runAuth(t, header)
			if called {
				t.Fatalf("should not reach next")
			}
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if body := rec.Body.String(); body != "{\"message\":\"Not authorized\"}\n" {
				t.Fatalf("unexpected body %q", body)
			}
		})
	}
}
