package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectWithRetry_GivesUpAfterAttempts(t *testing.T) {
	cfg := Config{URI: "mongodb://127.0.0.1:1", Database: "test", Timeout: 50 * time.Millisecond}

	for _, delay := range []time.Duration{0, 10 * time.Millisecond} {
		client, db, err := ConnectWithRetry(context.Background(), cfg, RetryPolicy{Attempts: 2, Delay: delay}, zerolog.Nop())
		require.Error(t, err, "delay %s", delay)
		assert.Contains(t, err.Error(), "giving up after 2 attempts")
		assert.Nil(t, client)
		assert.Nil(t, db)
	}
}

func TestConnectWithRetry_StopsOnCancel(t *testing.T) {
	cfg := Config{URI: "mongodb://127.0.0.1:1", Database: "test", Timeout: 50 * time.Millisecond}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := ConnectWithRetry(ctx, cfg, RetryPolicy{Attempts: 10, Delay: time.Minute}, zerolog.Nop())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
