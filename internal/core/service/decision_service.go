package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
	"github.com/decisionreplay/backend/internal/core/scoring"
	"github.com/decisionreplay/backend/internal/pkg/metrics"
)

const (
	DefaultListLimit    = 50
	MaxListLimit        = 200
	MaxListOffset       = 10000
	DefaultSimilarLimit = 10
	MaxSimilarLimit     = 50
)

// DecisionService implements ports.DecisionService. Every write is scored
// before it reaches the repository.
type DecisionService struct {
	repo   ports.DecisionRepository
	policy scoring.Policy
	audit  *AuditRecorder
	now    func() time.Time
	log    zerolog.Logger
}

var _ ports.DecisionService = (*DecisionService)(nil)

func NewDecisionService(repo ports.DecisionRepository, policy scoring.Policy, audit *AuditRecorder, log zerolog.Logger) *DecisionService {
	if policy == nil {
		policy = scoring.Heuristic{}
	}
	return &DecisionService{repo: repo, policy: policy, audit: audit, now: time.Now, log: log}
}

func (s *DecisionService) Create(ctx context.Context, rc domain.RequestContext, userID string, in ports.DecisionInput) (*domain.Decision, error) {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return nil, domain.ErrValidation.WithMessage("Title is required.")
	}

	d, err := s.repo.Create(ctx, userID, s.score(in))
	if err != nil {
		return nil, err
	}

	s.observe("create", d)
	s.log.Info().Str("decision_id", d.ID).Str("user_id", userID).Int("quality_score", d.QualityScore).Msg("decision created")
	s.audit.Record(rc, domain.AuditEntry{
		UserID:     userID,
		Action:     domain.ActionDecisionCreate,
		EntityType: "decision",
		EntityID:   d.ID,
		Severity:   domain.SeverityInfo,
		Message:    "Decision created.",
	})
	return d, nil
}

// Update merges the payload over the stored row. The score is recomputed
// from the submitted fields alone, so omitted fields do not contribute.
func (s *DecisionService) Update(ctx context.Context, rc domain.RequestContext, userID, decisionID string, in ports.DecisionInput) (*domain.Decision, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, domain.ErrValidation.WithMessage("Title must not be empty.")
	}

	d, err := s.repo.Update(ctx, userID, decisionID, s.score(in))
	if err != nil {
		return nil, err
	}

	s.observe("update", d)
	s.audit.Record(rc, domain.AuditEntry{
		UserID:     userID,
		Action:     domain.ActionDecisionUpdate,
		EntityType: "decision",
		EntityID:   d.ID,
		Severity:   domain.SeverityInfo,
		Message:    "Decision updated.",
	})
	return d, nil
}

func (s *DecisionService) Delete(ctx context.Context, rc domain.RequestContext, userID, decisionID string) error {
	if err := s.repo.SoftDelete(ctx, userID, decisionID); err != nil {
		return err
	}

	metrics.DecisionWritesTotal.WithLabelValues("delete").Inc()
	s.audit.Record(rc, domain.AuditEntry{
		UserID:     userID,
		Action:     domain.ActionDecisionDelete,
		EntityType: "decision",
		EntityID:   decisionID,
		Severity:   domain.SeverityWarn,
		Message:    "Decision soft-deleted.",
	})
	return nil
}

func (s *DecisionService) Get(ctx context.Context, userID, decisionID string) (*domain.Decision, error) {
	return s.repo.Get(ctx, userID, decisionID)
}

func (s *DecisionService) List(ctx context.Context, filter ports.ListDecisionsFilter) ([]*domain.Decision, error) {
	filter.Limit = clampLimit(filter.Limit, DefaultListLimit, MaxListLimit)
	filter.Offset = clamp(filter.Offset, 0, MaxListOffset)
	filter.Query = strings.TrimSpace(filter.Query)

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.Decision{}
	}
	return items, nil
}

func (s *DecisionService) Similar(ctx context.Context, userID, query string, limit int) ([]domain.SimilarDecision, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrValidation.WithMessage("Query is required.")
	}

	hits, err := s.repo.Similar(ctx, userID, query, clampLimit(limit, DefaultSimilarLimit, MaxSimilarLimit))
	if err != nil {
		return nil, err
	}
	if hits == nil {
		hits = []domain.SimilarDecision{}
	}
	return hits, nil
}

func (s *DecisionService) score(in ports.DecisionInput) ports.DecisionWrite {
	res := s.policy.Score(scoringFields(in), s.now())
	return ports.DecisionWrite{
		Input:        in,
		QualityScore: res.QualityScore,
		BiasSignals:  res.BiasSignals,
	}
}

func (s *DecisionService) observe(op string, d *domain.Decision) {
	metrics.DecisionWritesTotal.WithLabelValues(op).Inc()
	metrics.DecisionQualityScore.Observe(float64(d.QualityScore))
	for _, b := range d.BiasSignals {
		metrics.BiasSignalsTotal.WithLabelValues(b.Type).Inc()
	}
}

func scoringFields(in ports.DecisionInput) scoring.Fields {
	return scoring.Fields{
		Title:           in.Title,
		Context:         in.Context,
		Notes:           in.Notes,
		ExpectedOutcome: in.ExpectedOutcome,
		RiskLevel:       in.RiskLevel,
		Options:         in.Options,
		Criteria:        in.Criteria,
		Confidence:      in.Confidence,
	}
}

// clampLimit treats a non-positive limit as "use the default".
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	return clamp(limit, 1, max)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
