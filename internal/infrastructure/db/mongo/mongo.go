package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryDelay = time.Second
)

// Config captures the settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// RetryPolicy bounds how often Connect is attempted at startup.
type RetryPolicy struct {
	Attempts uint64
	Delay    time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// ConnectWithRetry calls Connect until it succeeds or the policy's attempts
// are used up, waiting a constant delay between tries.
func ConnectWithRetry(ctx context.Context, cfg Config, policy RetryPolicy, logger zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	attempts := policy.Attempts
	if attempts == 0 {
		attempts = 1
	}
	delay := policy.Delay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	backoff := retry.WithMaxRetries(attempts-1, retry.NewConstant(delay))

	var (
		client *mongo.Client
		db     *mongo.Database
		try    uint64
	)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		try++
		var err error
		client, db, err = Connect(ctx, cfg)
		if err != nil {
			logger.Warn().Err(err).
				Uint64("attempt", try).
				Uint64("max_attempts", attempts).
				Msg("mongo connection failed")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("mongo: giving up after %d attempts: %w", try, err)
	}

	logger.Info().Str("database", cfg.Database).Uint64("attempt", try).Msg("connected to mongo")
	return client, db, nil
}
