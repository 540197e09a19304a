package scoring

import "github.com/decisionreplay/backend/internal/core/domain"

// Hints suggests improvements for a stored decision. Unlike the score, hints
// read the persisted row.
func Hints(d *domain.Decision) []string {
	hints := []string{}
	if trimmedLen(d.Context) < 20 {
		hints = append(hints, "Add more context to improve decision quality scoring.")
	}
	if !d.Options.IsArray() || len(d.Options.Array) < 2 {
		hints = append(hints, "Consider at least two options to reduce framing bias.")
	}
	if !d.Criteria.IsArray() || len(d.Criteria.Array) < 2 {
		hints = append(hints, "Define criteria to support more objective evaluation.")
	}
	if d.Confidence != nil && *d.Confidence >= overconfidenceThreshold {
		hints = append(hints, "Very high confidence can correlate with overconfidence bias; consider counter-evidence.")
	}
	return hints
}
