// Command api runs the decision journal HTTP service.
//
// @title                       Decision Replay API
// @version                     1.0
// @description                 Decision journaling backend: opaque-token sessions, decisions with heuristic quality scoring, outcomes, similarity search, analytics and admin audit views.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Opaque access token: "Bearer <token>"
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/decisionreplay/backend/internal/api"
	"github.com/decisionreplay/backend/internal/api/handler"
	"github.com/decisionreplay/backend/internal/core/ports"
	"github.com/decisionreplay/backend/internal/core/scoring"
	"github.com/decisionreplay/backend/internal/core/service"
	"github.com/decisionreplay/backend/internal/infrastructure/db/mongo"
	"github.com/decisionreplay/backend/internal/infrastructure/db/postgres"
	"github.com/decisionreplay/backend/internal/infrastructure/db/redis"
	"github.com/decisionreplay/backend/internal/infrastructure/queue"
	"github.com/decisionreplay/backend/internal/pkg/config"
	"github.com/decisionreplay/backend/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "decision-replay-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Postgres (system of record) ---
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:              cfg.Postgres.URL,
		MaxConns:         cfg.Postgres.PoolMax,
		IdleTimeout:      cfg.Postgres.IdleTimeout,
		StatementTimeout: cfg.Postgres.StatementTimeout,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Int("pool_max", cfg.Postgres.PoolMax).Msg("connected to postgres")

	checks := map[string]handler.Check{"postgres": handler.PostgresCheck(db)}

	// --- Redis (optional session touch limiter) ---
	var touchLimiter ports.SessionTouchLimiter
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			ClientName: "decision-replay-api",
		})
		if err != nil {
			return err
		}
		defer func(c *goredis.Client) { _ = c.Close() }(rdb)
		touchLimiter = redis.NewTouchLimiter(rdb, cfg.Redis.TouchInterval)
		checks["redis"] = handler.RedisCheck(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Dur("touch_interval", cfg.Redis.TouchInterval).Msg("connected to redis")
	}

	// --- Audit sink ---
	auditStore, closeAudit, err := openAuditStore(ctx, cfg, db, checks)
	if err != nil {
		return err
	}
	defer closeAudit()

	// --- Services ---
	dispatcher := queue.NewDispatcher(cfg.Async.MaxInflight, log)
	recorder := service.NewAuditRecorder(auditStore, dispatcher)

	authRepo := postgres.NewAuthRepository(db)
	decisionRepo := postgres.NewDecisionRepository(db)

	authService := service.NewAuthService(authRepo, recorder, dispatcher, service.AuthOptions{
		TokenTTL:     cfg.Auth.AccessTokenTTL(),
		PasswordCost: cfg.Auth.PasswordSaltRounds,
		TouchLimiter: touchLimiter,
	}, log)

	e := api.NewRouter(api.Deps{
		Log:       log,
		Env:       cfg.Env,
		HTTP:      cfg.HTTP,
		Auth:      authService,
		Decisions: service.NewDecisionService(decisionRepo, scoring.Heuristic{}, recorder, log),
		Outcomes:  service.NewOutcomeService(postgres.NewOutcomeRepository(db), recorder, log),
		Analytics: service.NewAnalyticsService(postgres.NewAnalyticsRepository(db), decisionRepo),
		Admin:     service.NewAdminService(authRepo, auditStore),
		Checks:    checks,
	})

	// --- Serve ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := dispatcher.Wait(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("best-effort tasks still running at shutdown")
	}
	return nil
}

// openAuditStore selects the audit backend. The Mongo backend registers its
// own readiness check and returns a disconnect func.
func openAuditStore(ctx context.Context, cfg *config.Config, db *sql.DB, checks map[string]handler.Check) (ports.AuditStore, func(), error) {
	if cfg.Audit.Backend != config.AuditBackendMongo {
		return postgres.NewAuditRepository(db), func() {}, nil
	}

	store, conn, err := mongo.OpenAudit(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  cfg.Mongo.AppName,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return nil, nil, err
	}
	checks["mongodb"] = handler.MongoCheck(conn.DB)

	closeFn := func() { _ = conn.Close() }
	return store, closeFn, nil
}
