package badges

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/badge-engine/internal/llm"
	"github.com/jonathan/badge-engine/internal/types"
)

// evaluateProjectBatch decides, in one reasoning round-trip, the full set
// of single-project badges earned for one project. A returned error means
// the whole batch yielded nothing; the orchestrator logs it and moves on.
func (c *Calculator) evaluateProjectBatch(ctx context.Context, projectID uuid.UUID, metrics []types.ProjectMetric, candidates []types.BadgeDefinition, subscription types.SubscriptionTier) ([]types.UserBadgeWithDetails, error) {
	prompt := buildProjectBatchPrompt(metrics, candidates)

	raw, err := c.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("reasoning call failed for project %s: %w", projectID, err)
	}

	quals, err := parseProjectBatchResponse(llm.CleanJSONBlock(raw), candidates)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", projectID, err)
	}

	awards := make([]types.UserBadgeWithDetails, 0, len(quals))
	for _, q := range quals {
		final, capped := applyTierCap(q.Tier, subscription)
		data := achievementData(q.Reason, q.Tier, capped)
		pid := projectID
		awards = append(awards, newAwardedBadge(q.Badge, final, "", data, &pid))
	}
	return awards, nil
}
