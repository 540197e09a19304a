package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

// OutcomeService implements ports.OutcomeService.
type OutcomeService struct {
	repo  ports.OutcomeRepository
	audit *AuditRecorder
	log   zerolog.Logger
}

var _ ports.OutcomeService = (*OutcomeService)(nil)

func NewOutcomeService(repo ports.OutcomeRepository, audit *AuditRecorder, log zerolog.Logger) *OutcomeService {
	return &OutcomeService{repo: repo, audit: audit, log: log}
}

func (s *OutcomeService) Create(ctx context.Context, rc domain.RequestContext, userID, decisionID string, in ports.OutcomeInput) (*domain.Outcome, error) {
	o, err := s.repo.Create(ctx, userID, decisionID, in)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("outcome_id", o.ID).Str("decision_id", decisionID).Msg("outcome created")
	s.audit.Record(rc, domain.AuditEntry{
		UserID:     userID,
		Action:     domain.ActionOutcomeCreate,
		EntityType: "outcome",
		EntityID:   o.ID,
		Severity:   domain.SeverityInfo,
		Message:    "Outcome created.",
		Metadata:   map[string]any{"decisionId": decisionID},
	})
	return o, nil
}

func (s *OutcomeService) Update(ctx context.Context, rc domain.RequestContext, userID, outcomeID string, in ports.OutcomeInput) (*domain.Outcome, error) {
	o, err := s.repo.Update(ctx, userID, outcomeID, in)
	if err != nil {
		return nil, err
	}

	s.audit.Record(rc, domain.AuditEntry{
		UserID:     userID,
		Action:     domain.ActionOutcomeUpdate,
		EntityType: "outcome",
		EntityID:   o.ID,
		Severity:   domain.SeverityInfo,
		Message:    "Outcome updated.",
		Metadata:   map[string]any{"decisionId": o.DecisionID},
	})
	return o, nil
}

func (s *OutcomeService) Delete(ctx context.Context, rc domain.RequestContext, userID, outcomeID string) error {
	decisionID, err := s.repo.Delete(ctx, userID, outcomeID)
	if err != nil {
		return err
	}

	s.audit.Record(rc, domain.AuditEntry{
		UserID:     userID,
		Action:     domain.ActionOutcomeDelete,
		EntityType: "outcome",
		EntityID:   outcomeID,
		Severity:   domain.SeverityWarn,
		Message:    "Outcome deleted.",
		Metadata:   map[string]any{"decisionId": decisionID},
	})
	return nil
}

func (s *OutcomeService) List(ctx context.Context, userID, decisionID string) ([]domain.Outcome, error) {
	items, err := s.repo.ListForDecision(ctx, userID, decisionID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Outcome{}
	}
	return items, nil
}
