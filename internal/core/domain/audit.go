package domain

import "time"

// Severity of an audit entry.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarn     Severity = "warn"
	SeveritySecurity Severity = "security"
)

// Audit action tags.
const (
	ActionSignup         = "auth.signup"
	ActionLogin          = "auth.login"
	ActionLogout         = "auth.logout"
	ActionDecisionCreate = "decision.create"
	ActionDecisionUpdate = "decision.update"
	ActionDecisionDelete = "decision.delete"
	ActionOutcomeCreate  = "outcome.create"
	ActionOutcomeUpdate  = "outcome.update"
	ActionOutcomeDelete  = "outcome.delete"
)

// AuditEntry is an append-only record of a security relevant or mutating
// action. The core only ever writes entries.
type AuditEntry struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId,omitempty"`
	OrgUserID  string         `json:"orgUserId,omitempty"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType,omitempty"`
	EntityID   string         `json:"entityId,omitempty"`
	Severity   Severity       `json:"severity"`
	Message    string         `json:"message,omitempty"`
	IP         string         `json:"ip,omitempty"`
	UserAgent  string         `json:"userAgent,omitempty"`
	RequestID  string         `json:"requestId,omitempty"`
	Metadata   map[string]any `json:"metadata"`
	CreatedAt  time.Time      `json:"createdAt"`
}
