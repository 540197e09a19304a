package ports

import (
	"context"
	"time"

	"github.com/decisionreplay/backend/internal/core/domain"
)

// OutcomeInput is a validated outcome payload; nil means omitted.
type OutcomeInput struct {
	OutcomeDate    *time.Time
	Status         *domain.OutcomeStatus
	Summary        *string
	Metrics        *domain.JSONValue
	Satisfaction   *int
	LessonsLearned *string
}

// OutcomeRepository defines persistence for outcomes.
type OutcomeRepository interface {
	// Create checks the parent decision is live and owned by userID and
	// inserts the outcome inside one transaction.
	Create(ctx context.Context, userID, decisionID string, in OutcomeInput) (*domain.Outcome, error)
	// Update and Delete are scoped by (outcomeID, userID) only.
	Update(ctx context.Context, userID, outcomeID string, in OutcomeInput) (*domain.Outcome, error)
	// Delete removes the outcome and returns its parent decision id.
	Delete(ctx context.Context, userID, outcomeID string) (string, error)
	// ListForDecision checks ownership of the decision then returns its
	// outcomes, outcome date desc then created desc.
	ListForDecision(ctx context.Context, userID, decisionID string) ([]domain.Outcome, error)
}
