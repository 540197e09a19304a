package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Audit sink backends.
const (
	AuditBackendPostgres = "postgres"
	AuditBackendMongo    = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	HTTP     HTTPConfig
	Postgres PostgresConfig
	Auth     AuthConfig
	Audit    AuditConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Async    AsyncConfig
}

// HTTPConfig holds the edge policies applied before routing.
type HTTPConfig struct {
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS,     default=*"`
	BodyLimit       string        `env:"HTTP_BODY_LIMIT,     default=2M"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX,      default=100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW,   default=60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,    default=10s"`
}

type PostgresConfig struct {
	URL              string        `env:"POSTGRES_URL, required"`
	PoolMax          int           `env:"PG_POOL_MAX,          default=10"`
	IdleTimeout      time.Duration `env:"PG_IDLE_TIMEOUT,      default=30s"`
	StatementTimeout time.Duration `env:"PG_STATEMENT_TIMEOUT, default=15s"`
}

type AuthConfig struct {
	AccessTokenTTLMin  int `env:"ACCESS_TOKEN_TTL_MIN, default=1440"`
	PasswordSaltRounds int `env:"PASSWORD_SALT_ROUNDS, default=10"`
}

// AccessTokenTTL is the lifetime of an issued session.
func (a AuthConfig) AccessTokenTTL() time.Duration {
	return time.Duration(a.AccessTokenTTLMin) * time.Minute
}

type AuditConfig struct {
	Backend string `env:"AUDIT_BACKEND, default=postgres"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,      default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,       default=decision_replay"`
	AppName  string        `env:"MONGO_APP_NAME, default=decision-replay-api"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT,  default=10s"`
}

// RedisConfig configures the session touch limiter. An empty Addr disables it.
type RedisConfig struct {
	Addr          string        `env:"REDIS_ADDR"`
	Password      string        `env:"REDIS_PASSWORD"`
	DB            int           `env:"REDIS_DB,               default=0"`
	TouchInterval time.Duration `env:"SESSION_TOUCH_INTERVAL, default=1m"`
}

type AsyncConfig struct {
	MaxInflight int `env:"ASYNC_MAX_INFLIGHT, default=64"`
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Validate checks cross-field constraints envconfig cannot express.
func (c *Config) Validate() error {
	switch c.Audit.Backend {
	case AuditBackendPostgres, AuditBackendMongo:
	default:
		return fmt.Errorf("AUDIT_BACKEND must be %q or %q, got %q", AuditBackendPostgres, AuditBackendMongo, c.Audit.Backend)
	}
	if c.Auth.AccessTokenTTLMin <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL_MIN must be positive, got %d", c.Auth.AccessTokenTTLMin)
	}
	if c.HTTP.RateLimitMax < 0 || c.HTTP.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be >= 0 and RATE_LIMIT_WINDOW positive")
	}
	if c.Postgres.PoolMax <= 0 {
		return fmt.Errorf("PG_POOL_MAX must be positive, got %d", c.Postgres.PoolMax)
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
