package domain

import "time"

// DecisionStatus is the lifecycle state of a recorded decision.
type DecisionStatus string

const (
	DecisionOpen     DecisionStatus = "open"
	DecisionClosed   DecisionStatus = "closed"
	DecisionArchived DecisionStatus = "archived"
)

// Valid reports whether s is a known status.
func (s DecisionStatus) Valid() bool {
	switch s {
	case DecisionOpen, DecisionClosed, DecisionArchived:
		return true
	}
	return false
}

// Bias signal types emitted by the scoring engine.
const (
	BiasOverconfidence    = "overconfidence"
	BiasCertaintyLanguage = "certainty_language"
	BiasBandwagon         = "bandwagon"
	BiasRecency           = "recency_bias"
)

// BiasSignal is one heuristically detected bias pattern.
type BiasSignal struct {
	Type       string    `json:"type"`
	Evidence   string    `json:"evidence"`
	DetectedAt time.Time `json:"detectedAt"`
}

// Decision is a journal entry owned by exactly one user. QualityScore and
// BiasSignals are derived on every write and never accepted from callers.
type Decision struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	Title           string         `json:"title"`
	Context         *string        `json:"context"`
	DecisionDate    time.Time      `json:"decisionDate"`
	Status          DecisionStatus `json:"status"`
	Options         JSONValue      `json:"options"`
	Criteria        JSONValue      `json:"criteria"`
	ExpectedOutcome *string        `json:"expectedOutcome"`
	SelectedOption  JSONValue      `json:"selectedOption"`
	Confidence      *int           `json:"confidence"`
	RiskLevel       *string        `json:"riskLevel"`
	Importance      *int           `json:"importance"`
	TimeHorizon     *string        `json:"timeHorizon"`
	Notes           *string        `json:"notes"`
	QualityScore    int            `json:"qualityScore"`
	BiasSignals     []BiasSignal   `json:"biasSignals"`
	Outcomes        []Outcome      `json:"outcomes,omitempty"`
	DeletedAt       *time.Time     `json:"-"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// SimilarDecision is one ranked similarity search hit.
type SimilarDecision struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Context      *string        `json:"context"`
	DecisionDate time.Time      `json:"decisionDate"`
	Status       DecisionStatus `json:"status"`
	QualityScore int            `json:"qualityScore"`
	BiasSignals  []BiasSignal   `json:"biasSignals"`
	Similarity   float64        `json:"similarity"`
}
