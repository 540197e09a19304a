package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

// AuditRepository appends to and reads the audit_logs table.
type AuditRepository struct {
	db *sql.DB
}

var _ ports.AuditStore = (*AuditRepository)(nil)

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Append(ctx context.Context, e *domain.AuditEntry) error {
	meta := e.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode audit metadata: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO audit_logs
			(user_id, org_user_id, action, entity_type, entity_id, severity, message, ip, user_agent, request_id, metadata, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb, $12)`,
		nullIfEmpty(e.UserID), nullIfEmpty(e.OrgUserID), e.Action,
		nullIfEmpty(e.EntityType), nullIfEmpty(e.EntityID), string(e.Severity),
		nullIfEmpty(e.Message), nullIfEmpty(e.IP), nullIfEmpty(e.UserAgent), nullIfEmpty(e.RequestID),
		string(metaJSON), e.CreatedAt,
	)
	if err != nil {
		return translate(err, "insert audit log")
	}
	return nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, org_user_id, action, entity_type, entity_id, severity, message,
		       ip, user_agent, request_id, metadata, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, translate(err, "list audit logs")
	}
	defer rows.Close()

	entries := []*domain.AuditEntry{}
	for rows.Next() {
		var (
			e                                       domain.AuditEntry
			userID, orgUserID, entityType, entityID sql.NullString
			message, ip, ua, requestID              sql.NullString
			severity                                string
			meta                                    []byte
		)
		if err := rows.Scan(&e.ID, &userID, &orgUserID, &e.Action, &entityType, &entityID, &severity, &message,
			&ip, &ua, &requestID, &meta, &e.CreatedAt); err != nil {
			return nil, translate(err, "scan audit log")
		}
		e.UserID = userID.String
		e.OrgUserID = orgUserID.String
		e.EntityType = entityType.String
		e.EntityID = entityID.String
		e.Severity = domain.Severity(severity)
		e.Message = message.String
		e.IP = ip.String
		e.UserAgent = ua.String
		e.RequestID = requestID.String
		e.Metadata = map[string]any{}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &e.Metadata); err != nil {
				return nil, fmt.Errorf("decode audit metadata: %w", err)
			}
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "list audit logs")
	}
	return entries, nil
}
