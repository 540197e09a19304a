package domain

// Rollups are the dashboard aggregates for one user.
type Rollups struct {
	Decisions         DecisionAggregate `json:"decisions"`
	DecisionsByStatus []StatusCount     `json:"decisionsByStatus"`
	Outcomes          OutcomeAggregate  `json:"outcomes"`
	BiasByType        []BiasCount       `json:"biasByType"`
}

type DecisionAggregate struct {
	Count           int      `json:"decisionsCount"`
	AvgQualityScore *float64 `json:"avgQualityScore"`
	AvgConfidence   *float64 `json:"avgConfidence"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type OutcomeAggregate struct {
	Count           int      `json:"outcomesCount"`
	AvgSatisfaction *float64 `json:"avgSatisfaction"`
}

type BiasCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Insights explains a stored decision score.
type Insights struct {
	DecisionID   string       `json:"decisionId"`
	Title        string       `json:"title"`
	QualityScore int          `json:"qualityScore"`
	BiasFlags    []BiasSignal `json:"biasFlags"`
	Hints        []string     `json:"hints"`
}
