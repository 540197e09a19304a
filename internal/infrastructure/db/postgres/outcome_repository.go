package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

// OutcomeRepository persists outcomes. Outcomes carry their owner's user id
// and every statement is scoped by it.
type OutcomeRepository struct {
	db *sql.DB
}

var _ ports.OutcomeRepository = (*OutcomeRepository)(nil)

func NewOutcomeRepository(db *sql.DB) *OutcomeRepository {
	return &OutcomeRepository{db: db}
}

const outcomeColumns = `id, decision_id, user_id, outcome_date, status, summary, metrics, satisfaction, lessons_learned, created_at, updated_at`

var errOutcomeNotFound = domain.ErrNotFound.WithMessage("Outcome not found.")

func scanOutcome(row rowScanner) (*domain.Outcome, error) {
	o := &domain.Outcome{}
	var (
		summary, lessons sql.NullString
		satisfaction     sql.NullInt32
	)
	if err := row.Scan(&o.ID, &o.DecisionID, &o.UserID, &o.OutcomeDate, &o.Status, &summary, &o.Metrics, &satisfaction, &lessons, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.Summary = stringPtr(summary)
	o.LessonsLearned = stringPtr(lessons)
	o.Satisfaction = intPtr(satisfaction)
	return o, nil
}

func (r *OutcomeRepository) Create(ctx context.Context, userID, decisionID string, in ports.OutcomeInput) (*domain.Outcome, error) {
	var created *domain.Outcome
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := ensureDecisionOwner(ctx, tx, userID, decisionID); err != nil {
			return err
		}

		row := tx.QueryRowContext(ctx, `
			INSERT INTO outcomes (decision_id, user_id, outcome_date, status, summary, metrics, satisfaction, lessons_learned)
			VALUES ($1, $2, COALESCE($3::date, CURRENT_DATE), COALESCE($4, 'observed'), $5, $6::jsonb, $7, $8)
			RETURNING `+outcomeColumns,
			decisionID, userID, in.OutcomeDate, in.Status, in.Summary,
			jsonOrDefault(in.Metrics, domain.ObjectValue(nil)), in.Satisfaction, in.LessonsLearned,
		)
		o, err := scanOutcome(row)
		if err != nil {
			return translate(err, "insert outcome")
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *OutcomeRepository) Update(ctx context.Context, userID, outcomeID string, in ports.OutcomeInput) (*domain.Outcome, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE outcomes
		SET
			outcome_date = COALESCE($3::date, outcome_date),
			status = COALESCE($4, status),
			summary = COALESCE($5, summary),
			metrics = COALESCE($6::jsonb, metrics),
			satisfaction = COALESCE($7, satisfaction),
			lessons_learned = COALESCE($8, lessons_learned),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+outcomeColumns,
		outcomeID, userID,
		in.OutcomeDate, in.Status, in.Summary, in.Metrics, in.Satisfaction, in.LessonsLearned,
	)
	o, err := scanOutcome(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errOutcomeNotFound
	}
	if err != nil {
		return nil, translate(err, "update outcome")
	}
	return o, nil
}

func (r *OutcomeRepository) Delete(ctx context.Context, userID, outcomeID string) (string, error) {
	var decisionID string
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM outcomes WHERE id = $1 AND user_id = $2 RETURNING decision_id`,
		outcomeID, userID,
	).Scan(&decisionID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errOutcomeNotFound
	}
	if err != nil {
		return "", translate(err, "delete outcome")
	}
	return decisionID, nil
}

func (r *OutcomeRepository) ListForDecision(ctx context.Context, userID, decisionID string) ([]domain.Outcome, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM decisions WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL LIMIT 1`,
		decisionID, userID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errDecisionNotFound
	}
	if err != nil {
		return nil, translate(err, "check decision owner")
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+outcomeColumns+`
		FROM outcomes
		WHERE user_id = $1 AND decision_id = $2
		ORDER BY outcome_date DESC, created_at DESC`, userID, decisionID)
	if err != nil {
		return nil, translate(err, "list outcomes")
	}
	defer rows.Close()

	items := []domain.Outcome{}
	for rows.Next() {
		o, err := scanOutcome(rows)
		if err != nil {
			return nil, translate(err, "scan outcome")
		}
		items = append(items, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "list outcomes")
	}
	return items, nil
}
