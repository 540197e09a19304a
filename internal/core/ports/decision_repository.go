package ports

import (
	"context"
	"time"

	"github.com/decisionreplay/backend/internal/core/domain"
)

// DecisionInput is a validated decision payload. A nil field was omitted by
// the caller: on create the column default applies, on update the stored
// value is kept.
type DecisionInput struct {
	Title           *string
	Context         *string
	DecisionDate    *time.Time
	Status          *domain.DecisionStatus
	Options         *domain.JSONValue
	Criteria        *domain.JSONValue
	ExpectedOutcome *string
	SelectedOption  *domain.JSONValue
	Confidence      *int
	RiskLevel       *string
	Importance      *int
	TimeHorizon     *string
	Notes           *string
}

// DecisionWrite is a payload together with the derived score and flags
// computed from it.
type DecisionWrite struct {
	Input        DecisionInput
	QualityScore int
	BiasSignals  []domain.BiasSignal
}

// ListDecisionsFilter carries the list query. UserID is always enforced.
type ListDecisionsFilter struct {
	UserID string
	Status string // optional equality filter
	Query  string // optional case-insensitive substring over title/context/notes
	Limit  int
	Offset int
}

// DecisionRepository defines ownership-scoped persistence for decisions.
// Every method is constrained by userID; foreign or soft-deleted rows
// surface as domain.ErrNotFound.
type DecisionRepository interface {
	Create(ctx context.Context, userID string, w DecisionWrite) (*domain.Decision, error)
	// Update verifies ownership and applies the COALESCE merge inside one
	// transaction.
	Update(ctx context.Context, userID, decisionID string, w DecisionWrite) (*domain.Decision, error)
	SoftDelete(ctx context.Context, userID, decisionID string) error
	// Get returns the decision with its outcomes embedded.
	Get(ctx context.Context, userID, decisionID string) (*domain.Decision, error)
	// List returns decisions with outcomes embedded, decision date desc then
	// created desc.
	List(ctx context.Context, filter ListDecisionsFilter) ([]*domain.Decision, error)
	// Similar ranks the caller's decisions against a text query.
	Similar(ctx context.Context, userID, query string, limit int) ([]domain.SimilarDecision, error)
}
