package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

type stubOutcomeRepo struct {
	decisions map[string]string // decision id -> owner
	outcomes  map[string]*domain.Outcome
}

func (r *stubOutcomeRepo) Create(_ context.Context, userID, decisionID string, in ports.OutcomeInput) (*domain.Outcome, error) {
	if r.decisions[decisionID] != userID {
		return nil, domain.ErrNotFound
	}
	o := &domain.Outcome{ID: "out_1", DecisionID: decisionID, UserID: userID, Status: domain.OutcomeObserved, Summary: in.Summary}
	r.outcomes[o.ID] = o
	return o, nil
}

func (r *stubOutcomeRepo) Update(_ context.Context, userID, outcomeID string, in ports.OutcomeInput) (*domain.Outcome, error) {
	o, ok := r.outcomes[outcomeID]
	if !ok || o.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if in.Summary != nil {
		o.Summary = in.Summary
	}
	return o, nil
}

func (r *stubOutcomeRepo) Delete(_ context.Context, userID, outcomeID string) (string, error) {
	o, ok := r.outcomes[outcomeID]
	if !ok || o.UserID != userID {
		return "", domain.ErrNotFound
	}
	delete(r.outcomes, outcomeID)
	return o.DecisionID, nil
}

func (r *stubOutcomeRepo) ListForDecision(_ context.Context, userID, decisionID string) ([]domain.Outcome, error) {
	if r.decisions[decisionID] != userID {
		return nil, domain.ErrNotFound
	}
	return nil, nil
}

func TestOutcomeService_Lifecycle(t *testing.T) {
	repo := &stubOutcomeRepo{
		decisions: map[string]string{"dec_1": "user_1"},
		outcomes:  map[string]*domain.Outcome{},
	}
	sink := &stubAuditSink{}
	svc := NewOutcomeService(repo, NewAuditRecorder(sink, &syncRunner{}), discardLogger)
	ctx := context.Background()

	_, err := svc.Create(ctx, testRC, "user_2", "dec_1", ports.OutcomeInput{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	o, err := svc.Create(ctx, testRC, "user_1", "dec_1", ports.OutcomeInput{Summary: strPtr("went fine")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, testRC, "user_2", o.ID, ports.OutcomeInput{Summary: strPtr("x")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	items, err := svc.List(ctx, "user_1", "dec_1")
	require.NoError(t, err)
	assert.NotNil(t, items)

	require.NoError(t, svc.Delete(ctx, testRC, "user_1", o.ID))

	assert.Equal(t, []string{domain.ActionOutcomeCreate, domain.ActionOutcomeDelete}, sink.actions())
	for _, e := range sink.entries {
		assert.Equal(t, "dec_1", e.Metadata["decisionId"])
	}
}
