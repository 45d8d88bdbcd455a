package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler("http://localhost:5000", "development", []string{"http://localhost:5000/api/banners"})
	h.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	c, rec := newResourceContext(http.MethodGet, "/api/health", "")
	if err := h.Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "OK" || resp.Timestamp != "2025-03-01T12:00:00Z" || resp.BaseURL != "http://localhost:5000" || len(resp.Endpoints) != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestReadinessHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	cases := []struct {
		name        string
		mongo       PingFunc
		redis       PingFunc
		code        int
		redisStatus string
	}{
		{"all up", ok, ok, http.StatusOK, "ok"},
		{"redis disabled", ok, nil, http.StatusOK, "disabled"},
		{"redis down is reported only", ok, down, http.StatusOK, "unhealthy"},
		{"mongo down", down, ok, http.StatusServiceUnavailable, "ok"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewReadinessHandler(tc.mongo, tc.redis)
			c, rec := newResourceContext(http.MethodGet, "/api/health/ready", "")

			if err := h.Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}

			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Dependencies["redis"].Status != tc.redisStatus {
				t.Fatalf("expected redis %q, got %+v", tc.redisStatus, resp.Dependencies)
			}
		})
	}
}
