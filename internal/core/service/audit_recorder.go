package service

import (
	"context"
	"time"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

// AuditRecorder hands audit entries to the sink off the request path.
// Delivery is best-effort: a failed append is logged by the runner and
// dropped, and never reaches the operation that produced the entry.
type AuditRecorder struct {
	sink   ports.AuditSink
	runner ports.TaskRunner
	now    func() time.Time
}

func NewAuditRecorder(sink ports.AuditSink, runner ports.TaskRunner) *AuditRecorder {
	return &AuditRecorder{sink: sink, runner: runner, now: time.Now}
}

// Record stamps entry with the request facts and schedules the append.
func (r *AuditRecorder) Record(rc domain.RequestContext, entry domain.AuditEntry) {
	entry.IP = rc.IP
	entry.UserAgent = rc.UserAgent
	entry.RequestID = rc.RequestID
	if entry.Severity == "" {
		entry.Severity = domain.SeverityInfo
	}
	if entry.Metadata == nil {
		entry.Metadata = map[string]any{}
	}
	entry.CreatedAt = r.now().UTC()

	r.runner.Go("audit", func(ctx context.Context) error {
		return r.sink.Append(ctx, &entry)
	})
}
