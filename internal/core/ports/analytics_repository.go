package ports

import (
	"context"

	"github.com/decisionreplay/backend/internal/core/domain"
)

// AnalyticsRepository computes owner-scoped aggregates.
type AnalyticsRepository interface {
	Rollups(ctx context.Context, userID string, r RollupRange) (*domain.Rollups, error)
}
