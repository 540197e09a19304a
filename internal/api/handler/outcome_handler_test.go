package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

const testOutcomeID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"

func TestOutcomeHandler_Create(t *testing.T) {
	var got ports.OutcomeInput
	stub := &stubOutcomeService{
		createFn: func(userID, decisionID string, in ports.OutcomeInput) (*domain.Outcome, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, testDecisionID, decisionID)
			got = in
			return &domain.Outcome{ID: testOutcomeID, DecisionID: decisionID}, nil
		},
	}
	body := `{"status":"final","satisfaction":80,"metrics":{"revenue":1200},"outcomeDate":"2025-06-30T10:00:00Z"}`
	c, rec := newTestContext(http.MethodPost, "/decisions/"+testDecisionID+"/outcomes", body, false)
	withParam(c, "decisionId", testDecisionID)

	require.NoError(t, NewOutcomeHandler(stub).Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, got.Status)
	assert.Equal(t, domain.OutcomeFinal, *got.Status)
	require.NotNil(t, got.Satisfaction)
	assert.Equal(t, 80, *got.Satisfaction)
	require.NotNil(t, got.Metrics)
	assert.Equal(t, domain.JSONObject, got.Metrics.Kind)
	require.NotNil(t, got.OutcomeDate)
	assert.True(t, got.OutcomeDate.Equal(time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC)))
	assert.Nil(t, got.Summary)
}

func TestOutcomeHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		path string
	}{
		{"metrics must be an object", `{"metrics":[1,2]}`, "metrics"},
		{"unknown status", `{"status":"pending"}`, "status"},
		{"satisfaction above 100", `{"satisfaction":120}`, "satisfaction"},
		{"bad outcome date", `{"outcomeDate":"30/06/2025"}`, "outcomeDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/decisions/"+testDecisionID+"/outcomes", tt.body, false)
			withParam(c, "decisionId", testDecisionID)
			assertIssue(t, NewOutcomeHandler(&stubOutcomeService{}).Create(c), tt.path)
		})
	}
}

func TestOutcomeHandler_Update_ForeignOutcome(t *testing.T) {
	stub := &stubOutcomeService{
		updateFn: func(string, string, ports.OutcomeInput) (*domain.Outcome, error) {
			return nil, domain.ErrNotFound
		},
	}
	c, _ := newTestContext(http.MethodPut, "/outcomes/"+testOutcomeID, `{"summary":"ok"}`, false)
	withParam(c, "outcomeId", testOutcomeID)

	err := NewOutcomeHandler(stub).Update(c)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestOutcomeHandler_DeleteAndList(t *testing.T) {
	stub := &stubOutcomeService{
		deleteFn: func(userID, outcomeID string) error {
			assert.Equal(t, testOutcomeID, outcomeID)
			return nil
		},
		listFn: func(userID, decisionID string) ([]domain.Outcome, error) {
			return []domain.Outcome{{ID: testOutcomeID}}, nil
		},
	}

	c, rec := newTestContext(http.MethodDelete, "/outcomes/"+testOutcomeID, "", false)
	withParam(c, "outcomeId", testOutcomeID)
	require.NoError(t, NewOutcomeHandler(stub).Delete(c))
	assert.JSONEq(t, `{"status":"ok","deleted":true}`, rec.Body.String())

	c, rec = newTestContext(http.MethodGet, "/decisions/"+testDecisionID+"/outcomes", "", false)
	withParam(c, "decisionId", testDecisionID)
	require.NoError(t, NewOutcomeHandler(stub).List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), testOutcomeID)
}
