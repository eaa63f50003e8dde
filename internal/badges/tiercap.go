package badges

import "github.com/jonathan/badge-engine/internal/types"

// applyTierCap enforces the subscription display rule: a free plan shows
// at most bronze, with the uncapped tier reported back so the caller can
// upsell. The cap never changes whether a badge is earned.
func applyTierCap(determined types.BadgeTier, subscription types.SubscriptionTier) (final types.BadgeTier, capped bool) {
	if subscription == types.SubscriptionFree && determined != types.TierBronze {
		return types.TierBronze, true
	}
	return determined, false
}
