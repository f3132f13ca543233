package notification

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/catchers-sc/teamapp/internal/matches"
	"github.com/catchers-sc/teamapp/internal/users"
)

// PoolStore adapts the pgx-backed stores to the sweep interfaces.
type PoolStore struct {
	DB *pgxpool.Pool
}

func (p PoolStore) GetUpcoming(ctx context.Context, now time.Time) ([]matches.Match, error) {
	return matches.GetUpcomingMatches(ctx, p.DB, now)
}

func (p PoolStore) MarkNotificationSent(ctx context.Context, matchID, userID string, n matches.Notification) error {
	return matches.MarkNotificationSent(ctx, p.DB, matchID, userID, n)
}

func (p PoolStore) GetRoster(ctx context.Context) ([]users.User, error) {
	return users.GetRoster(ctx, p.DB)
}
