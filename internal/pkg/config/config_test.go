package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"POSTGRES_URL": "postgres://localhost/decisions",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 10, cfg.Postgres.PoolMax)
	assert.Equal(t, 30*time.Second, cfg.Postgres.IdleTimeout)
	assert.Equal(t, 15*time.Second, cfg.Postgres.StatementTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 10, cfg.Auth.PasswordSaltRounds)
	assert.Equal(t, AuditBackendPostgres, cfg.Audit.Backend)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, time.Minute, cfg.Redis.TouchInterval)
	assert.Equal(t, "decision-replay-api", cfg.Mongo.AppName)
	assert.Equal(t, 10*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, 64, cfg.Async.MaxInflight)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "2M", cfg.HTTP.BodyLimit)
	assert.Equal(t, 100, cfg.HTTP.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.HTTP.RateLimitWindow)
}

func TestLoad_RequiresPostgresURL(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownAuditBackend(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"POSTGRES_URL":  "postgres://localhost/decisions",
		"AUDIT_BACKEND": "kafka",
	}))
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"POSTGRES_URL":         "postgres://localhost/decisions",
		"ENV":                  "production",
		"ACCESS_TOKEN_TTL_MIN": "30",
		"AUDIT_BACKEND":        "mongo",
		"REDIS_ADDR":           "redis:6379",
		"ALLOWED_ORIGINS":      "https://app.example.com,https://admin.example.com",
		"RATE_LIMIT_MAX":       "0",
		"MONGO_TIMEOUT":        "3s",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, AuditBackendMongo, cfg.Audit.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.Zero(t, cfg.HTTP.RateLimitMax)
	assert.Equal(t, 3*time.Second, cfg.Mongo.Timeout)
}
