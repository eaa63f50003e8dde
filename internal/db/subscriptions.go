package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/badge-engine/internal/types"
)

// FetchSubscriptionTier returns the user's plan tier. A user without a
// subscription row is on the free plan; anything other than "pro" maps
// to free as well, so a bad row can only restrict, never widen.
func (db *DB) FetchSubscriptionTier(ctx context.Context, userID uuid.UUID) (types.SubscriptionTier, error) {
	var tier string
	err := db.pool.QueryRow(ctx,
		`SELECT plan_tier FROM subscriptions
		 WHERE user_id = $1 AND status = 'active'
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID,
	).Scan(&tier)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.SubscriptionFree, nil
		}
		return "", fmt.Errorf("failed to get subscription tier: %w", err)
	}

	if types.SubscriptionTier(tier) == types.SubscriptionPro {
		return types.SubscriptionPro, nil
	}
	return types.SubscriptionFree, nil
}
