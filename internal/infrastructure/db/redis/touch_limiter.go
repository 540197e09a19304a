package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/decisionreplay/backend/internal/core/ports"
)

const defaultTouchInterval = time.Minute

// TouchLimiter lets one last_used_at write per session through per interval,
// shared across every API instance.
// Key format: session:touch:<session_id>
type TouchLimiter struct {
	client   *redis.Client
	interval time.Duration
}

var _ ports.SessionTouchLimiter = (*TouchLimiter)(nil)

// NewTouchLimiter wraps client. If interval <= 0, defaultTouchInterval is used.
func NewTouchLimiter(client *redis.Client, interval time.Duration) *TouchLimiter {
	if interval <= 0 {
		interval = defaultTouchInterval
	}
	return &TouchLimiter{client: client, interval: interval}
}

// Allow reports whether the session is due for a touch and, if so, claims the
// slot for the interval.
func (l *TouchLimiter) Allow(ctx context.Context, sessionID string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(sessionID), "1", l.interval).Result()
	if err != nil {
		return false, fmt.Errorf("touch limiter: %w", err)
	}
	return ok, nil
}

func (l *TouchLimiter) key(sessionID string) string {
	return fmt.Sprintf("session:touch:%s", sessionID)
}
