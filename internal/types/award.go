package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BadgeTier is an earned badge level.
type BadgeTier string

// Badge tier levels, lowest to highest.
const (
	TierBronze BadgeTier = "bronze"
	TierSilver BadgeTier = "silver"
	TierGold   BadgeTier = "gold"
)

// ParseBadgeTier normalizes a tier string from an untrusted source.
// Matching is case-insensitive; anything outside the three known levels
// is rejected.
func ParseBadgeTier(s string) (BadgeTier, bool) {
	switch BadgeTier(strings.ToLower(strings.TrimSpace(s))) {
	case TierBronze:
		return TierBronze, true
	case TierSilver:
		return TierSilver, true
	case TierGold:
		return TierGold, true
	default:
		return "", false
	}
}

// AchievementData keys used by the calculator.
const (
	// AchievementKeyReason holds the reasoning step's free-text justification.
	AchievementKeyReason = "llm_reason"
	// AchievementKeyEligibleTier records the uncapped tier when the
	// subscription cap lowered the displayed tier.
	AchievementKeyEligibleTier = "eligible_tier"
)

// UserBadgeWithDetails is one awarded badge produced by a calculation run.
// Records are built fresh on every invocation; diffing against previously
// persisted awards is the caller's concern.
type UserBadgeWithDetails struct {
	Badge            BadgeDefinition `json:"badge"`
	Tier             BadgeTier       `json:"tier"`
	AchievementValue string          `json:"achievement_value"`
	AchievementData  map[string]any  `json:"achievement_data"`
	SourceProjectIDs []uuid.UUID     `json:"source_project_ids,omitempty"`
	EarnedAt         time.Time       `json:"earned_at"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
