package ports

import (
	"context"
	"time"

	"github.com/decisionreplay/backend/internal/core/domain"
)

// NewUser carries the columns written at signup.
type NewUser struct {
	Email        string
	Username     string
	DisplayName  string
	PasswordHash string
}

// NewSession carries the columns written when a session is issued.
type NewSession struct {
	TokenHash string
	ExpiresAt time.Time
	IP        string
	UserAgent string
}

// AuthRepository defines persistence for users, role grants and sessions.
// Methods documented as atomic run inside a single transaction.
type AuthRepository interface {
	// CreateUserWithSession atomically checks that no live user owns the
	// email, inserts the user, grants the default role and inserts the
	// session. Any failure leaves no user row behind. A live duplicate
	// yields domain.ErrConflict.
	CreateUserWithSession(ctx context.Context, user NewUser, session NewSession) (*domain.User, *domain.AuthSession, error)

	// FindUserByEmail returns the user including soft-deleted rows, or
	// domain.ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// RecordLogin atomically stamps last_login_at and inserts the session.
	RecordLogin(ctx context.Context, userID string, session NewSession) (*domain.AuthSession, error)

	// RevokeSession marks the live session with tokenHash revoked and
	// returns its owner. revoked is false when no live session matched.
	RevokeSession(ctx context.Context, tokenHash string) (userID string, revoked bool, err error)

	// FindSessionByTokenHash returns the access session with tokenHash and
	// its owner, or domain.ErrNotFound.
	FindSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.AuthSession, *domain.User, error)

	// TouchSession stamps last_used_at.
	TouchSession(ctx context.Context, sessionID string) error

	// HasRole reports whether the user holds the named role.
	HasRole(ctx context.Context, userID, role string) (bool, error)

	// ListUsers returns live users, newest first.
	ListUsers(ctx context.Context, limit int) ([]*domain.User, error)
}

// SessionTouchLimiter decides whether a last_used_at write is due for a
// session. Implementations are shared across processes (Redis).
type SessionTouchLimiter interface {
	Allow(ctx context.Context, sessionID string) (bool, error)
}
