package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

const collectionAuditLogs = "audit_logs"

// AuditRepository is the document-store audit sink, selected with
// AUDIT_BACKEND=mongo.
type AuditRepository struct {
	col *mongo.Collection
}

var _ ports.AuditStore = (*AuditRepository)(nil)

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAuditLogs)}
}

type auditDoc struct {
	ID         string         `bson:"_id"`
	UserID     string         `bson:"user_id,omitempty"`
	OrgUserID  string         `bson:"org_user_id,omitempty"`
	Action     string         `bson:"action"`
	EntityType string         `bson:"entity_type,omitempty"`
	EntityID   string         `bson:"entity_id,omitempty"`
	Severity   string         `bson:"severity"`
	Message    string         `bson:"message,omitempty"`
	IP         string         `bson:"ip,omitempty"`
	UserAgent  string         `bson:"user_agent,omitempty"`
	RequestID  string         `bson:"request_id,omitempty"`
	Metadata   map[string]any `bson:"metadata"`
	CreatedAt  time.Time      `bson:"created_at"`
}

func toAuditDoc(e *domain.AuditEntry) auditDoc {
	id := e.ID
	if id == "" {
		id = uuid.NewString()
	}
	meta := e.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	return auditDoc{
		ID:         id,
		UserID:     e.UserID,
		OrgUserID:  e.OrgUserID,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Severity:   string(e.Severity),
		Message:    e.Message,
		IP:         e.IP,
		UserAgent:  e.UserAgent,
		RequestID:  e.RequestID,
		Metadata:   meta,
		CreatedAt:  e.CreatedAt,
	}
}

func (d auditDoc) toDomain() *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:         d.ID,
		UserID:     d.UserID,
		OrgUserID:  d.OrgUserID,
		Action:     d.Action,
		EntityType: d.EntityType,
		EntityID:   d.EntityID,
		Severity:   domain.Severity(d.Severity),
		Message:    d.Message,
		IP:         d.IP,
		UserAgent:  d.UserAgent,
		RequestID:  d.RequestID,
		Metadata:   d.Metadata,
		CreatedAt:  d.CreatedAt,
	}
}

// Append inserts one audit document.
func (r *AuditRepository) Append(ctx context.Context, e *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toAuditDoc(e)); err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries first.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit logs: %w", err)
	}
	defer cur.Close(ctx)

	var docs []auditDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode audit logs: %w", err)
	}

	out := make([]*domain.AuditEntry, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// auditIndexes back the newest-first operator listing and per-user lookups.
var auditIndexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "created_at", Value: -1}}},
	{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	{Keys: bson.D{{Key: "action", Value: 1}}},
}
