package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,         default=5000"`
	Env        string        `env:"ENV,          default=development"`
	LogLevel   string        `env:"LOG_LEVEL,    default=info"`
	JWTSecret  string        `env:"JWT_SECRET,   required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,    default=24h"`
	BaseURL    string        `env:"API_BASE_URL, default=http://localhost:5000"`
	CORSOrigin string        `env:"CORS_ORIGIN,  default=*"`
	BodyLimit  string        `env:"BODY_LIMIT,   default=25M"`
	UploadDir  string        `env:"UPLOAD_DIR,   default=uploads"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Startup StartupConfig
	Admin   AdminConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=musicadmin"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=30s"`
}

// RedisConfig is optional: an empty Addr disables contact deduplication.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,          default=0"`
	Timeout  time.Duration `env:"REDIS_TIMEOUT,     default=2s"`
	DedupTTL time.Duration `env:"CONTACT_DEDUP_TTL, default=10m"`
}

// StartupConfig bounds the database connection retry at boot.
type StartupConfig struct {
	Attempts   uint64        `env:"STARTUP_ATTEMPTS,    default=3"`
	RetryDelay time.Duration `env:"STARTUP_RETRY_DELAY, default=5s"`
}

// AdminConfig describes the account created on first start.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@musicadmin.com"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if cfg.Startup.Attempts == 0 {
		return nil, fmt.Errorf("config: STARTUP_ATTEMPTS must be at least 1")
	}
	if cfg.Startup.RetryDelay <= 0 {
		return nil, fmt.Errorf("config: STARTUP_RETRY_DELAY must be positive")
	}
	return &cfg, nil
}
