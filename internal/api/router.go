package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/decisionreplay/backend/docs"
	"github.com/decisionreplay/backend/internal/api/handler"
	"github.com/decisionreplay/backend/internal/api/middleware"
	"github.com/decisionreplay/backend/internal/core/ports"
	"github.com/decisionreplay/backend/internal/pkg/config"
)

const metricsSubsystem = "decision_replay"

// Deps carries everything the router wires into handlers.
type Deps struct {
	Log       zerolog.Logger
	Env       string
	HTTP      config.HTTPConfig
	Auth      ports.AuthService
	Decisions ports.DecisionService
	Outcomes  ports.OutcomeService
	Analytics ports.AnalyticsService
	Admin     ports.AdminService
	// Checks are the readiness probes keyed by dependency name.
	Checks map[string]handler.Check
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestContext())
	e.Use(middleware.AccessLog(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     d.HTTP.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Requested-With", echo.HeaderXRequestID},
		ExposeHeaders:    []string{echo.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           3600,
	}))
	if d.HTTP.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(d.HTTP.BodyLimit))
	}
	if d.HTTP.RateLimitMax > 0 {
		e.Use(rateLimiter(d.HTTP))
	}
	e.Use(echoprometheus.NewMiddleware(metricsSubsystem))

	// --- Dependencies ---
	session := middleware.Session(d.Auth)
	authHandler := handler.NewAuthHandler(d.Auth)
	decisionHandler := handler.NewDecisionHandler(d.Decisions)
	outcomeHandler := handler.NewOutcomeHandler(d.Outcomes)
	similarityHandler := handler.NewSimilarityHandler(d.Decisions)
	analyticsHandler := handler.NewAnalyticsHandler(d.Analytics)
	adminHandler := handler.NewAdminHandler(d.Admin)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout) // unguarded: revokes whatever bearer is presented
	e.GET("/auth/me", authHandler.Me, session)

	// --- Decisions & outcomes ---
	decisions := e.Group("/decisions", session)
	decisions.GET("", decisionHandler.List)
	decisions.POST("", decisionHandler.Create)
	decisions.GET("/:decisionId", decisionHandler.Get)
	decisions.PUT("/:decisionId", decisionHandler.Update)
	decisions.DELETE("/:decisionId", decisionHandler.Delete)
	decisions.GET("/:decisionId/outcomes", outcomeHandler.List)
	decisions.POST("/:decisionId/outcomes", outcomeHandler.Create)

	outcomes := e.Group("/outcomes", session)
	outcomes.PUT("/:outcomeId", outcomeHandler.Update)
	outcomes.DELETE("/:outcomeId", outcomeHandler.Delete)

	e.POST("/similarity/search", similarityHandler.Search, session)

	analytics := e.Group("/analytics", session)
	analytics.GET("/rollups", analyticsHandler.Rollups)
	analytics.GET("/decisions/:decisionId/insights", analyticsHandler.Insights)

	// --- Admin (session + admin role) ---
	admin := e.Group("/admin", session, middleware.RequireAdmin(d.Auth))
	admin.GET("/users", adminHandler.Users)
	admin.GET("/audit", adminHandler.AuditLogs)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler(d.Env)
	readinessHandler := handler.NewReadinessHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoSwagger.WrapHandler)

	return e
}

// rateLimiter allows RateLimitMax requests per RateLimitWindow per client IP.
func rateLimiter(cfg config.HTTPConfig) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(cfg.RateLimitMax) / cfg.RateLimitWindow.Seconds()),
		Burst:     cfg.RateLimitMax,
		ExpiresIn: cfg.RateLimitWindow,
	})
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/health", "/health/ready", "/metrics":
				return true
			}
			return false
		},
		Store: store,
	})
}
