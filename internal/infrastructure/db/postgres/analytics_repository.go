package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

const maxBiasTypes = 20

// AnalyticsRepository computes owner-scoped dashboard aggregates.
type AnalyticsRepository struct {
	db *sql.DB
}

var _ ports.AnalyticsRepository = (*AnalyticsRepository)(nil)

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Rollups(ctx context.Context, userID string, rng ports.RollupRange) (*domain.Rollups, error) {
	args := []any{userID}
	where := `d.user_id = $1 AND d.deleted_at IS NULL`
	if rng.From != nil {
		args = append(args, *rng.From)
		where += fmt.Sprintf(` AND d.decision_date >= $%d::date`, len(args))
	}
	if rng.To != nil {
		args = append(args, *rng.To)
		where += fmt.Sprintf(` AND d.decision_date <= $%d::date`, len(args))
	}

	out := &domain.Rollups{
		DecisionsByStatus: []domain.StatusCount{},
		BiasByType:        []domain.BiasCount{},
	}

	var avgQuality, avgConfidence sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)::int, AVG(d.quality_score)::float, AVG(d.confidence)::float
		FROM decisions d
		WHERE `+where, args...,
	).Scan(&out.Decisions.Count, &avgQuality, &avgConfidence)
	if err != nil {
		return nil, translate(err, "decision rollup")
	}
	out.Decisions.AvgQualityScore = floatPtr(avgQuality)
	out.Decisions.AvgConfidence = floatPtr(avgConfidence)

	rows, err := r.db.QueryContext(ctx, `
		SELECT d.status, COUNT(*)::int
		FROM decisions d
		WHERE `+where+`
		GROUP BY d.status
		ORDER BY d.status`, args...)
	if err != nil {
		return nil, translate(err, "status rollup")
	}
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			rows.Close()
			return nil, translate(err, "scan status rollup")
		}
		out.DecisionsByStatus = append(out.DecisionsByStatus, sc)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, translate(err, "status rollup")
	}

	// Outcome aggregates are not date filtered.
	var avgSatisfaction sql.NullFloat64
	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(o.id)::int, AVG(o.satisfaction)::float
		FROM outcomes o
		JOIN decisions d ON d.id = o.decision_id
		WHERE d.user_id = $1 AND d.deleted_at IS NULL`, userID,
	).Scan(&out.Outcomes.Count, &avgSatisfaction)
	if err != nil {
		return nil, translate(err, "outcome rollup")
	}
	out.Outcomes.AvgSatisfaction = floatPtr(avgSatisfaction)

	rows, err = r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT COALESCE(bias_item->>'type', 'unknown') AS type, COUNT(*)::int AS count
		FROM decisions d,
			LATERAL jsonb_array_elements(d.bias_signals) AS bias_item
		WHERE %s
		GROUP BY type
		ORDER BY count DESC
		LIMIT %d`, where, maxBiasTypes), args...)
	if err != nil {
		return nil, translate(err, "bias rollup")
	}
	defer rows.Close()
	for rows.Next() {
		var bc domain.BiasCount
		if err := rows.Scan(&bc.Type, &bc.Count); err != nil {
			return nil, translate(err, "scan bias rollup")
		}
		out.BiasByType = append(out.BiasByType, bc)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "bias rollup")
	}
	return out, nil
}
