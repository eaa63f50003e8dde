package types

// SubscriptionTier is the user's plan at evaluation time. It only affects
// how an earned tier is reported, never whether a badge is earned.
type SubscriptionTier string

const (
	// SubscriptionFree caps displayed badge tiers at bronze.
	SubscriptionFree SubscriptionTier = "free"
	// SubscriptionPro passes determined tiers through unchanged.
	SubscriptionPro SubscriptionTier = "pro"
)
