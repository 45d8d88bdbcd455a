package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h token ttl, got %s", cfg.TokenTTL)
	}
	if cfg.Mongo.Database != "musicadmin" {
		t.Fatalf("unexpected database: %q", cfg.Mongo.Database)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("expected redis disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.Redis.Timeout != 2*time.Second {
		t.Fatalf("expected 2s redis timeout, got %s", cfg.Redis.Timeout)
	}
	if cfg.Startup.Attempts != 3 || cfg.Startup.RetryDelay != 5*time.Second {
		t.Fatalf("unexpected startup policy: %+v", cfg.Startup)
	}
	if cfg.Admin.Username != "admin" || cfg.Admin.Email != "admin@musicadmin.com" {
		t.Fatalf("unexpected admin defaults: %+v", cfg.Admin)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development environment by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":          "s3cret",
		"ENV":                 "production",
		"PORT":                "8080",
		"MONGO_URI":           "mongodb://db:27017",
		"REDIS_ADDR":          "cache:6379",
		"STARTUP_ATTEMPTS":    "5",
		"STARTUP_RETRY_DELAY": "250ms",
		"CONTACT_DEDUP_TTL":   "1m",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.IsDevelopment() {
		t.Fatalf("expected production environment")
	}
	if cfg.Port != "8080" || cfg.Mongo.URI != "mongodb://db:27017" || cfg.Redis.Addr != "cache:6379" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Startup.Attempts != 5 || cfg.Startup.RetryDelay != 250*time.Millisecond {
		t.Fatalf("unexpected startup policy: %+v", cfg.Startup)
	}
	if cfg.Redis.DedupTTL != time.Minute {
		t.Fatalf("unexpected dedup ttl: %s", cfg.Redis.DedupTTL)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	if _, err := load(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error when JWT_SECRET is missing")
	}
}

func TestLoad_ZeroAttempts(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":       "s3cret",
		"STARTUP_ATTEMPTS": "0",
	}))
	if err == nil {
		t.Fatalf("expected error for zero startup attempts")
	}
}

func TestLoad_NonPositiveRetryDelay(t *testing.T) {
	for _, delay := range []string{"0s", "-1s"} {
		t.Run(delay, func(t *testing.T) {
			_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
				"JWT_SECRET":          "s3cret",
				"STARTUP_RETRY_DELAY": delay,
			}))
			if err == nil {
				t.Fatalf("expected error for STARTUP_RETRY_DELAY=%s", delay)
			}
		})
	}
}
