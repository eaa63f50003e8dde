package badges

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/badge-engine/internal/types"
)

// newAwardedBadge assembles one result record. Pure construction: no
// store writes, no diffing against previously persisted awards.
// projectID is nil for aggregate badges.
func newAwardedBadge(def types.BadgeDefinition, tier types.BadgeTier, value string, data map[string]any, projectID *uuid.UUID) types.UserBadgeWithDetails {
	now := time.Now().UTC()

	var sources []uuid.UUID
	if projectID != nil {
		sources = []uuid.UUID{*projectID}
	}

	return types.UserBadgeWithDetails{
		Badge:            def,
		Tier:             tier,
		AchievementValue: value,
		AchievementData:  data,
		SourceProjectIDs: sources,
		EarnedAt:         now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// achievementData builds the per-award document: the reasoning step's
// justification, plus the uncapped tier when the subscription cap fired.
func achievementData(reason string, eligible types.BadgeTier, capped bool) map[string]any {
	data := map[string]any{
		types.AchievementKeyReason: reason,
	}
	if capped {
		data[types.AchievementKeyEligibleTier] = string(eligible)
	}
	return data
}
