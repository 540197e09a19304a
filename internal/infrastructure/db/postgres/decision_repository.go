package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

// DecisionRepository persists decisions. Every statement is scoped by the
// owning user id and excludes soft-deleted rows.
type DecisionRepository struct {
	db *sql.DB
}

var _ ports.DecisionRepository = (*DecisionRepository)(nil)

func NewDecisionRepository(db *sql.DB) *DecisionRepository {
	return &DecisionRepository{db: db}
}

const decisionColumns = `d.id, d.user_id, d.title, d.context, d.decision_date, d.status,
	d.options, d.criteria, d.expected_outcome, d.selected_option, d.confidence, d.risk_level,
	d.importance, d.time_horizon, d.notes, d.quality_score, d.bias_signals, d.created_at, d.updated_at`

// outcomesAggregate embeds a decision's outcomes as a JSON array whose keys
// match domain.Outcome.
const outcomesAggregate = `(
	SELECT COALESCE(json_agg(json_build_object(
		'id', o.id,
		'decisionId', o.decision_id,
		'userId', o.user_id,
		'outcomeDate', o.outcome_date::timestamptz,
		'status', o.status,
		'summary', o.summary,
		'metrics', o.metrics,
		'satisfaction', o.satisfaction,
		'lessonsLearned', o.lessons_learned,
		'createdAt', o.created_at,
		'updatedAt', o.updated_at
	) ORDER BY o.outcome_date DESC, o.created_at DESC), '[]'::json)
	FROM outcomes o
	WHERE o.decision_id = d.id AND o.user_id = d.user_id
) AS outcomes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDecision(row rowScanner, withOutcomes bool) (*domain.Decision, error) {
	d := &domain.Decision{}
	var (
		contextText, expected, risk, horizon, notes sql.NullString
		confidence, importance                      sql.NullInt32
		bias, outcomes                              []byte
	)
	dest := []any{
		&d.ID, &d.UserID, &d.Title, &contextText, &d.DecisionDate, &d.Status,
		&d.Options, &d.Criteria, &expected, &d.SelectedOption, &confidence, &risk,
		&importance, &horizon, &notes, &d.QualityScore, &bias, &d.CreatedAt, &d.UpdatedAt,
	}
	if withOutcomes {
		dest = append(dest, &outcomes)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	d.Context = stringPtr(contextText)
	d.ExpectedOutcome = stringPtr(expected)
	d.RiskLevel = stringPtr(risk)
	d.TimeHorizon = stringPtr(horizon)
	d.Notes = stringPtr(notes)
	d.Confidence = intPtr(confidence)
	d.Importance = intPtr(importance)

	d.BiasSignals = []domain.BiasSignal{}
	if len(bias) > 0 {
		if err := json.Unmarshal(bias, &d.BiasSignals); err != nil {
			return nil, fmt.Errorf("decode bias signals: %w", err)
		}
	}
	if withOutcomes {
		d.Outcomes = []domain.Outcome{}
		if len(outcomes) > 0 {
			if err := json.Unmarshal(outcomes, &d.Outcomes); err != nil {
				return nil, fmt.Errorf("decode outcomes: %w", err)
			}
		}
	}
	return d, nil
}

func encodeSignals(signals []domain.BiasSignal) (string, error) {
	if signals == nil {
		signals = []domain.BiasSignal{}
	}
	b, err := json.Marshal(signals)
	if err != nil {
		return "", fmt.Errorf("encode bias signals: %w", err)
	}
	return string(b), nil
}

func jsonOrDefault(v *domain.JSONValue, def domain.JSONValue) domain.JSONValue {
	if v == nil {
		return def
	}
	return *v
}

var errDecisionNotFound = domain.ErrNotFound.WithMessage("Decision not found.")

func (r *DecisionRepository) Create(ctx context.Context, userID string, w ports.DecisionWrite) (*domain.Decision, error) {
	in := w.Input
	signals, err := encodeSignals(w.BiasSignals)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO decisions AS d
			(user_id, title, context, decision_date, status, options, criteria, expected_outcome, selected_option,
			 confidence, risk_level, importance, time_horizon, quality_score, bias_signals, notes)
		VALUES
			($1, $2, $3, COALESCE($4::date, CURRENT_DATE), COALESCE($5, 'open'), $6::jsonb, $7::jsonb, $8, $9::jsonb,
			 $10, $11, $12, $13, $14, $15::jsonb, $16)
		RETURNING `+decisionColumns,
		userID, in.Title, in.Context, in.DecisionDate, in.Status,
		jsonOrDefault(in.Options, domain.ArrayValue()), jsonOrDefault(in.Criteria, domain.ArrayValue()),
		in.ExpectedOutcome, in.SelectedOption,
		in.Confidence, in.RiskLevel, in.Importance, in.TimeHorizon,
		w.QualityScore, signals, in.Notes,
	)
	d, err := scanDecision(row, false)
	if err != nil {
		return nil, translate(err, "insert decision")
	}
	d.Outcomes = []domain.Outcome{}
	return d, nil
}

func (r *DecisionRepository) Update(ctx context.Context, userID, decisionID string, w ports.DecisionWrite) (*domain.Decision, error) {
	in := w.Input
	signals, err := encodeSignals(w.BiasSignals)
	if err != nil {
		return nil, err
	}

	var updated *domain.Decision
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := ensureDecisionOwner(ctx, tx, userID, decisionID); err != nil {
			return err
		}

		row := tx.QueryRowContext(ctx, `
			UPDATE decisions AS d
			SET
				title = COALESCE($3, title),
				context = COALESCE($4, context),
				decision_date = COALESCE($5::date, decision_date),
				status = COALESCE($6, status),
				options = COALESCE($7::jsonb, options),
				criteria = COALESCE($8::jsonb, criteria),
				expected_outcome = COALESCE($9, expected_outcome),
				selected_option = COALESCE($10::jsonb, selected_option),
				confidence = COALESCE($11, confidence),
				risk_level = COALESCE($12, risk_level),
				importance = COALESCE($13, importance),
				time_horizon = COALESCE($14, time_horizon),
				notes = COALESCE($15, notes),
				quality_score = $16,
				bias_signals = $17::jsonb,
				updated_at = NOW()
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
			RETURNING `+decisionColumns,
			decisionID, userID,
			in.Title, in.Context, in.DecisionDate, in.Status,
			in.Options, in.Criteria, in.ExpectedOutcome, in.SelectedOption,
			in.Confidence, in.RiskLevel, in.Importance, in.TimeHorizon, in.Notes,
			w.QualityScore, signals,
		)
		d, err := scanDecision(row, false)
		if errors.Is(err, sql.ErrNoRows) {
			return errDecisionNotFound
		}
		if err != nil {
			return translate(err, "update decision")
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ensureDecisionOwner locks the live decision row for the rest of tx.
func ensureDecisionOwner(ctx context.Context, tx *sql.Tx, userID, decisionID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `
		SELECT id FROM decisions
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		LIMIT 1
		FOR UPDATE`, decisionID, userID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return errDecisionNotFound
	}
	if err != nil {
		return translate(err, "check decision owner")
	}
	return nil
}

func (r *DecisionRepository) SoftDelete(ctx context.Context, userID, decisionID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE decisions
		SET deleted_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`, decisionID, userID)
	if err != nil {
		return translate(err, "delete decision")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translate(err, "delete decision")
	}
	if n == 0 {
		return errDecisionNotFound
	}
	return nil
}

func (r *DecisionRepository) Get(ctx context.Context, userID, decisionID string) (*domain.Decision, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+decisionColumns+`, `+outcomesAggregate+`
		FROM decisions d
		WHERE d.id = $1 AND d.user_id = $2 AND d.deleted_at IS NULL
		LIMIT 1`, decisionID, userID)
	d, err := scanDecision(row, true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errDecisionNotFound
	}
	if err != nil {
		return nil, translate(err, "get decision")
	}
	return d, nil
}

func (r *DecisionRepository) List(ctx context.Context, f ports.ListDecisionsFilter) ([]*domain.Decision, error) {
	args := []any{f.UserID}
	where := `d.user_id = $1 AND d.deleted_at IS NULL`
	if f.Status != "" {
		args = append(args, f.Status)
		where += fmt.Sprintf(` AND d.status = $%d`, len(args))
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := len(args)
		where += fmt.Sprintf(` AND (d.title ILIKE $%d OR COALESCE(d.context, '') ILIKE $%d OR COALESCE(d.notes, '') ILIKE $%d)`, n, n, n)
	}
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s, %s
		FROM decisions d
		WHERE %s
		ORDER BY d.decision_date DESC, d.created_at DESC
		LIMIT $%d OFFSET $%d`,
		decisionColumns, outcomesAggregate, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, translate(err, "list decisions")
	}
	defer rows.Close()

	items := []*domain.Decision{}
	for rows.Next() {
		d, err := scanDecision(rows, true)
		if err != nil {
			return nil, translate(err, "scan decision")
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "list decisions")
	}
	return items, nil
}

// Similar ranks matches by a fixed weighted sum: title 0.9, context 0.6,
// notes 0.4.
func (r *DecisionRepository) Similar(ctx context.Context, userID, query string, limit int) ([]domain.SimilarDecision, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.id, d.title, d.context, d.decision_date, d.status, d.quality_score, d.bias_signals,
			(
				CASE WHEN d.title ILIKE $2 THEN 0.9 ELSE 0 END +
				CASE WHEN COALESCE(d.context, '') ILIKE $2 THEN 0.6 ELSE 0 END +
				CASE WHEN COALESCE(d.notes, '') ILIKE $2 THEN 0.4 ELSE 0 END
			)::float AS similarity
		FROM decisions d
		WHERE d.user_id = $1 AND d.deleted_at IS NULL
			AND (d.title ILIKE $2 OR COALESCE(d.context, '') ILIKE $2 OR COALESCE(d.notes, '') ILIKE $2)
		ORDER BY similarity DESC, d.decision_date DESC
		LIMIT $3`, userID, "%"+query+"%", limit)
	if err != nil {
		return nil, translate(err, "similarity search")
	}
	defer rows.Close()

	hits := []domain.SimilarDecision{}
	for rows.Next() {
		var (
			h           domain.SimilarDecision
			contextText sql.NullString
			bias        []byte
		)
		if err := rows.Scan(&h.ID, &h.Title, &contextText, &h.DecisionDate, &h.Status, &h.QualityScore, &bias, &h.Similarity); err != nil {
			return nil, translate(err, "scan similarity hit")
		}
		h.Context = stringPtr(contextText)
		h.BiasSignals = []domain.BiasSignal{}
		if len(bias) > 0 {
			if err := json.Unmarshal(bias, &h.BiasSignals); err != nil {
				return nil, fmt.Errorf("decode bias signals: %w", err)
			}
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "similarity search")
	}
	return hits, nil
}
