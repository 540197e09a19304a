// Package scoring derives a decision's quality score and bias signals from
// its field values. The computation is pure: the same snapshot and clock
// reading always produce the same result.
package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/decisionreplay/backend/internal/core/domain"
)

const (
	baseScore = 30
	minScore  = 0
	maxScore  = 100

	overconfidenceThreshold = 90
)

// Fields is the snapshot of decision fields the engine reads. A nil pointer
// means the field was not supplied.
type Fields struct {
	Title           *string
	Context         *string
	Notes           *string
	ExpectedOutcome *string
	RiskLevel       *string
	Options         *domain.JSONValue
	Criteria        *domain.JSONValue
	Confidence      *int
}

// Result is the derived part of a decision.
type Result struct {
	QualityScore int
	BiasSignals  []domain.BiasSignal
}

// Policy scores a decision snapshot. now stamps the emitted signals.
type Policy interface {
	Score(f Fields, now time.Time) Result
}

// Heuristic is the default additive scoring policy.
type Heuristic struct{}

var _ Policy = Heuristic{}

type increment struct {
	points int
	hit    func(Fields) bool
}

var increments = []increment{
	{10, func(f Fields) bool { return trimmedLen(f.Title) >= 5 }},
	{10, func(f Fields) bool { return trimmedLen(f.Context) >= 20 }},
	{15, func(f Fields) bool { return arrayLen(f.Options) >= 2 }},
	{15, func(f Fields) bool { return arrayLen(f.Criteria) >= 2 }},
	{10, func(f Fields) bool { return trimmedLen(f.ExpectedOutcome) >= 10 }},
	{5, func(f Fields) bool { return f.Confidence != nil }},
	{5, func(f Fields) bool { return f.RiskLevel != nil && *f.RiskLevel != "" }},
}

type pattern struct {
	biasType string
	evidence string
	re       *regexp.Regexp
}

// Order matters: signals are emitted in this sequence.
var patterns = []pattern{
	{domain.BiasCertaintyLanguage, "absolute terms", regexp.MustCompile(`\balways\b|\bnever\b|\bguarantee(d)?\b`)},
	{domain.BiasBandwagon, "social proof phrasing", regexp.MustCompile(`\beveryone\b|\bthey all\b|\bmost people\b`)},
	{domain.BiasRecency, "recency phrasing", regexp.MustCompile(`\brecent\b|\blast time\b|\byesterday\b`)},
}

// Score implements Policy.
func (Heuristic) Score(f Fields, now time.Time) Result {
	return Result{
		QualityScore: QualityScore(f),
		BiasSignals:  BiasSignals(f, now),
	}
}

// QualityScore sums the independent increments over the base and clamps the
// result to [0, 100].
func QualityScore(f Fields) int {
	score := baseScore
	for _, inc := range increments {
		if inc.hit(f) {
			score += inc.points
		}
	}
	return clamp(score, minScore, maxScore)
}

// BiasSignals scans title, context and notes (case-folded) plus the
// confidence value. The returned slice is never nil.
func BiasSignals(f Fields, now time.Time) []domain.BiasSignal {
	signals := []domain.BiasSignal{}
	detectedAt := now.UTC()

	if f.Confidence != nil && *f.Confidence >= overconfidenceThreshold {
		signals = append(signals, domain.BiasSignal{
			Type:       domain.BiasOverconfidence,
			Evidence:   fmt.Sprintf("confidence=%d", *f.Confidence),
			DetectedAt: detectedAt,
		})
	}

	text := scanText(f)
	for _, p := range patterns {
		if p.re.MatchString(text) {
			signals = append(signals, domain.BiasSignal{
				Type:       p.biasType,
				Evidence:   p.evidence,
				DetectedAt: detectedAt,
			})
		}
	}
	return signals
}

func scanText(f Fields) string {
	return strings.ToLower(deref(f.Title) + " " + deref(f.Context) + " " + deref(f.Notes))
}

func trimmedLen(s *string) int {
	if s == nil {
		return 0
	}
	return len([]rune(strings.TrimSpace(*s)))
}

func arrayLen(v *domain.JSONValue) int {
	if v == nil || !v.IsArray() {
		return 0
	}
	return len(v.Array)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
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
