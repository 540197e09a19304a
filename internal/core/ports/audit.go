package ports

import (
	"context"

	"github.com/decisionreplay/backend/internal/core/domain"
)

// AuditSink appends one immutable audit entry.
type AuditSink interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditReader lists recent audit entries for operators.
type AuditReader interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

// AuditStore is implemented by every audit backend.
type AuditStore interface {
	AuditSink
	AuditReader
}

// TaskRunner runs best-effort work off the caller's critical path. Failures
// are observed by the runner and discarded; callers never wait.
type TaskRunner interface {
	Go(name string, fn func(ctx context.Context) error)
}
