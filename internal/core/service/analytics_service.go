package service

import (
	"context"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
	"github.com/decisionreplay/backend/internal/core/scoring"
)

// AnalyticsService implements ports.AnalyticsService.
type AnalyticsService struct {
	analytics ports.AnalyticsRepository
	decisions ports.DecisionRepository
}

var _ ports.AnalyticsService = (*AnalyticsService)(nil)

func NewAnalyticsService(analytics ports.AnalyticsRepository, decisions ports.DecisionRepository) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, decisions: decisions}
}

func (s *AnalyticsService) Rollups(ctx context.Context, userID string, r ports.RollupRange) (*domain.Rollups, error) {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return nil, domain.ErrValidation.WithMessage("from must not be after to.")
	}
	return s.analytics.Rollups(ctx, userID, r)
}

// Insights reports the stored score and flags of a decision plus
// improvement hints derived from the persisted fields.
func (s *AnalyticsService) Insights(ctx context.Context, userID, decisionID string) (*domain.Insights, error) {
	d, err := s.decisions.Get(ctx, userID, decisionID)
	if err != nil {
		return nil, err
	}

	flags := d.BiasSignals
	if flags == nil {
		flags = []domain.BiasSignal{}
	}
	return &domain.Insights{
		DecisionID:   d.ID,
		Title:        d.Title,
		QualityScore: d.QualityScore,
		BiasFlags:    flags,
		Hints:        scoring.Hints(d),
	}, nil
}
