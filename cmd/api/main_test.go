package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"

	"github.com/musicadmin/content-api/internal/pkg/config"
)

func TestConnectRedis_Disabled(t *testing.T) {
	cfg := &config.Config{}
	if rdb := connectRedis(context.Background(), cfg, zerolog.Nop()); rdb != nil {
		t.Fatalf("expected no client when REDIS_ADDR is empty")
	}
}

func TestConnectRedis_UnreachableDisablesDedup(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	cfg := &config.Config{Redis: config.RedisConfig{Addr: addr, Timeout: 200 * time.Millisecond}}
	if rdb := connectRedis(context.Background(), cfg, zerolog.Nop()); rdb != nil {
		t.Fatalf("expected no client when redis is down")
	}
}

func TestConnectRedis_Connected(t *testing.T) {
	srv := miniredis.RunT(t)

	cfg := &config.Config{Redis: config.RedisConfig{Addr: srv.Addr()}}
	rdb := connectRedis(context.Background(), cfg, zerolog.Nop())
	if rdb == nil {
		t.Fatalf("expected a client")
	}
	t.Cleanup(func() { _ = rdb.Close() })
}
