package ports

import (
	"context"
	"time"

	"github.com/decisionreplay/backend/internal/core/domain"
)

// DecisionService defines the decision journaling use cases.
type DecisionService interface {
	Create(ctx context.Context, rc domain.RequestContext, userID string, in DecisionInput) (*domain.Decision, error)
	Update(ctx context.Context, rc domain.RequestContext, userID, decisionID string, in DecisionInput) (*domain.Decision, error)
	Delete(ctx context.Context, rc domain.RequestContext, userID, decisionID string) error
	Get(ctx context.Context, userID, decisionID string) (*domain.Decision, error)
	List(ctx context.Context, filter ListDecisionsFilter) ([]*domain.Decision, error)
	Similar(ctx context.Context, userID, query string, limit int) ([]domain.SimilarDecision, error)
}

// OutcomeService defines the outcome logging use cases.
type OutcomeService interface {
	Create(ctx context.Context, rc domain.RequestContext, userID, decisionID string, in OutcomeInput) (*domain.Outcome, error)
	Update(ctx context.Context, rc domain.RequestContext, userID, outcomeID string, in OutcomeInput) (*domain.Outcome, error)
	Delete(ctx context.Context, rc domain.RequestContext, userID, outcomeID string) error
	List(ctx context.Context, userID, decisionID string) ([]domain.Outcome, error)
}

// RollupRange optionally bounds rollups by decision date (inclusive).
type RollupRange struct {
	From *time.Time
	To   *time.Time
}

// AnalyticsService exposes dashboard rollups and per-decision insights.
type AnalyticsService interface {
	Rollups(ctx context.Context, userID string, r RollupRange) (*domain.Rollups, error)
	Insights(ctx context.Context, userID, decisionID string) (*domain.Insights, error)
}

// AdminService exposes the operator listings.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ListAuditLogs(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}
