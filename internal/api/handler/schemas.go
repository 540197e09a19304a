package handler

import (
	"time"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

// ErrorResponse is the standard error envelope returned on all 4xx/5xx responses.
type ErrorResponse struct {
	Status    string         `json:"status"`
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
}

const statusOK = "ok"

// --- Auth ---

type signupRequest struct {
	Email       string  `json:"email"       validate:"required,email"`
	Username    *string `json:"username"    validate:"omitempty,min=2,max=64"`
	DisplayName *string `json:"displayName" validate:"omitempty,min=1,max=128"`
	Password    string  `json:"password"    validate:"required,min=8,max=256"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=256"`
}

type sessionResponse struct {
	Status string `json:"status"`
	*domain.IssuedSession
}

type logoutResponse struct {
	Status  string `json:"status"`
	Revoked bool   `json:"revoked"`
}

type sessionInfo struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type meResponse struct {
	Status  string         `json:"status"`
	User    domain.Profile `json:"user"`
	Session sessionInfo    `json:"session"`
}

// --- Decisions ---

// decisionFields are the optional decision attributes shared by create
// and update.
type decisionFields struct {
	Context         *string           `json:"context"         validate:"omitempty,max=10000"`
	DecisionDate    *string           `json:"decisionDate"`
	Status          *string           `json:"status"          validate:"omitempty,oneof=open closed archived"`
	Options         *domain.JSONValue `json:"options"`
	Criteria        *domain.JSONValue `json:"criteria"`
	ExpectedOutcome *string           `json:"expectedOutcome" validate:"omitempty,max=10000"`
	SelectedOption  *domain.JSONValue `json:"selectedOption"`
	Confidence      *int              `json:"confidence"      validate:"omitempty,min=0,max=100"`
	RiskLevel       *string           `json:"riskLevel"       validate:"omitempty,max=50"`
	Importance      *int              `json:"importance"      validate:"omitempty,min=1,max=5"`
	TimeHorizon     *string           `json:"timeHorizon"     validate:"omitempty,max=50"`
	Notes           *string           `json:"notes"           validate:"omitempty,max=20000"`
}

type createDecisionRequest struct {
	Title *string `json:"title" validate:"required,min=1,max=500"`
	decisionFields
}

type updateDecisionRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=500"`
	decisionFields
}

type listDecisionsQuery struct {
	Q      string `query:"q"      validate:"omitempty,max=200"`
	Status string `query:"status" validate:"omitempty,oneof=open closed archived"`
	Limit  int    `query:"limit"  validate:"omitempty,min=1,max=200"`
	Offset int    `query:"offset" validate:"min=0,max=10000"`
}

type decisionResponse struct {
	Status   string           `json:"status"`
	Decision *domain.Decision `json:"decision"`
}

type decisionListResponse struct {
	Status    string             `json:"status"`
	Decisions []*domain.Decision `json:"decisions"`
}

type deletedResponse struct {
	Status  string `json:"status"`
	Deleted bool   `json:"deleted"`
}

// toDecisionInput converts the shared fields and checks the structured
// values the validator cannot see into.
func (f decisionFields) toDecisionInput(title *string) (ports.DecisionInput, error) {
	var issues []Issue
	in := ports.DecisionInput{
		Title:           title,
		Context:         f.Context,
		Options:         f.Options,
		Criteria:        f.Criteria,
		ExpectedOutcome: f.ExpectedOutcome,
		SelectedOption:  f.SelectedOption,
		Confidence:      f.Confidence,
		RiskLevel:       f.RiskLevel,
		Importance:      f.Importance,
		TimeHorizon:     f.TimeHorizon,
		Notes:           f.Notes,
	}
	if f.Status != nil {
		s := domain.DecisionStatus(*f.Status)
		in.Status = &s
	}
	if f.DecisionDate != nil {
		d, err := parseDate(*f.DecisionDate)
		if err != nil {
			issues = append(issues, Issue{Path: "decisionDate", Code: "invalid_date", Message: "decisionDate must be an ISO date"})
		} else {
			in.DecisionDate = &d
		}
	}
	if f.Options != nil && !f.Options.IsArray() {
		issues = append(issues, Issue{Path: "options", Code: "invalid_type", Message: "options must be an array"})
	}
	if f.Criteria != nil && !f.Criteria.IsArray() {
		issues = append(issues, Issue{Path: "criteria", Code: "invalid_type", Message: "criteria must be an array"})
	}
	if len(issues) > 0 {
		return ports.DecisionInput{}, validationError(issues...)
	}
	return in, nil
}

// --- Outcomes ---

type outcomeRequest struct {
	OutcomeDate    *string           `json:"outcomeDate"`
	Status         *string           `json:"status"         validate:"omitempty,oneof=observed final revised"`
	Summary        *string           `json:"summary"        validate:"omitempty,max=10000"`
	Metrics        *domain.JSONValue `json:"metrics"`
	Satisfaction   *int              `json:"satisfaction"   validate:"omitempty,min=0,max=100"`
	LessonsLearned *string           `json:"lessonsLearned" validate:"omitempty,max=20000"`
}

type outcomeResponse struct {
	Status  string          `json:"status"`
	Outcome *domain.Outcome `json:"outcome"`
}

type outcomeListResponse struct {
	Status   string           `json:"status"`
	Outcomes []domain.Outcome `json:"outcomes"`
}

func (r outcomeRequest) toOutcomeInput() (ports.OutcomeInput, error) {
	var issues []Issue
	in := ports.OutcomeInput{
		Summary:        r.Summary,
		Metrics:        r.Metrics,
		Satisfaction:   r.Satisfaction,
		LessonsLearned: r.LessonsLearned,
	}
	if r.Status != nil {
		s := domain.OutcomeStatus(*r.Status)
		in.Status = &s
	}
	if r.OutcomeDate != nil {
		d, err := parseDate(*r.OutcomeDate)
		if err != nil {
			issues = append(issues, Issue{Path: "outcomeDate", Code: "invalid_date", Message: "outcomeDate must be an ISO date"})
		} else {
			in.OutcomeDate = &d
		}
	}
	if r.Metrics != nil && r.Metrics.Kind != domain.JSONObject {
		issues = append(issues, Issue{Path: "metrics", Code: "invalid_type", Message: "metrics must be an object"})
	}
	if len(issues) > 0 {
		return ports.OutcomeInput{}, validationError(issues...)
	}
	return in, nil
}

// --- Similarity ---

type similarityRequest struct {
	Query string `json:"query" validate:"required,min=1,max=500"`
	Limit *int   `json:"limit" validate:"omitempty,min=1,max=50"`
}

type similarityResponse struct {
	Status  string                   `json:"status"`
	Results []domain.SimilarDecision `json:"results"`
	Mode    string                   `json:"mode"`
}

// --- Analytics ---

type rollupsQuery struct {
	From string `query:"from"`
	To   string `query:"to"`
}

type rollupsResponse struct {
	Status  string          `json:"status"`
	Rollups *domain.Rollups `json:"rollups"`
}

type insightsResponse struct {
	Status   string           `json:"status"`
	Insights *domain.Insights `json:"insights"`
}

// --- Admin ---

type auditQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
}

type usersResponse struct {
	Status string         `json:"status"`
	Users  []*domain.User `json:"users"`
}

type auditLogsResponse struct {
	Status    string               `json:"status"`
	AuditLogs []*domain.AuditEntry `json:"auditLogs"`
}

// --- Health ---

type livenessResponse struct {
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// parseDate accepts an ISO 8601 date or timestamp. Values without a zone
// are read as UTC.
func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
