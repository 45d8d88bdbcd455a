package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(echomiddleware.RequestID())
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.GET("/ok", func(c echo.Context) error {
		c.Set(usernameKey, "admin")
		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	cases := []struct {
		path  string
		level string
		code  int
	}{
		{"/ok", "info", http.StatusOK},
		{"/missing", "warn", http.StatusNotFound},
		{"/boom", "error", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		buf.Reset()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("%s: invalid log line %q: %v", tc.path, buf.String(), err)
		}
		if entry["level"] != tc.level {
			t.Fatalf("%s: expected level %s, got %v", tc.path, tc.level, entry["level"])
		}
		if int(entry["status"].(float64)) != tc.code {
			t.Fatalf("%s: expected status %d, got %v", tc.path, tc.code, entry["status"])
		}
		if entry["request_id"] == "" || entry["request_id"] == nil {
			t.Fatalf("%s: request id missing", tc.path)
		}
		if tc.path == "/ok" && entry["actor"] != "admin" {
			t.Fatalf("expected actor admin, got %v", entry["actor"])
		}
	}
}
