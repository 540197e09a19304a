package domain

import "time"

// OutcomeStatus classifies how settled an observed outcome is.
type OutcomeStatus string

const (
	OutcomeObserved OutcomeStatus = "observed"
	OutcomeFinal    OutcomeStatus = "final"
	OutcomeRevised  OutcomeStatus = "revised"
)

// Outcome records what happened after a decision. UserID is denormalized
// from the parent decision and is the authority for update/delete scoping.
type Outcome struct {
	ID             string        `json:"id"`
	DecisionID     string        `json:"decisionId"`
	UserID         string        `json:"userId"`
	OutcomeDate    time.Time     `json:"outcomeDate"`
	Status         OutcomeStatus `json:"status"`
	Summary        *string       `json:"summary"`
	Metrics        JSONValue     `json:"metrics"`
	Satisfaction   *int          `json:"satisfaction"`
	LessonsLearned *string       `json:"lessonsLearned"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}
