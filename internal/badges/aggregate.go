package badges

import (
	"context"
	"fmt"

	"github.com/jonathan/badge-engine/internal/llm"
	"github.com/jonathan/badge-engine/internal/types"
)

// evaluateAggregateBadge decides one cross-project badge in one reasoning
// round-trip. Returns (nil, nil) when the badge is simply not earned; an
// error means the unit failed and is treated the same way by the caller.
func (c *Calculator) evaluateAggregateBadge(ctx context.Context, badge types.BadgeDefinition, metrics []types.ProjectMetric, subscription types.SubscriptionTier) (*types.UserBadgeWithDetails, error) {
	prompt := buildAggregatePrompt(badge, metrics)

	raw, err := c.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("reasoning call failed for aggregate badge %s: %w", badge.BadgeKey, err)
	}

	qual, err := parseAggregateResponse(llm.CleanJSONBlock(raw), badge)
	if err != nil {
		return nil, fmt.Errorf("aggregate badge %s: %w", badge.BadgeKey, err)
	}
	if qual == nil {
		return nil, nil
	}

	final, capped := applyTierCap(qual.Tier, subscription)
	data := achievementData(qual.Reason, qual.Tier, capped)
	award := newAwardedBadge(qual.Badge, final, "", data, nil)
	return &award, nil
}
