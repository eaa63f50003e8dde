package observability

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/badge-engine/internal/types"
)

func sampleAward(key string, tier types.BadgeTier, data map[string]any, projectIDs ...uuid.UUID) types.UserBadgeWithDetails {
	return types.UserBadgeWithDetails{
		Badge:            types.BadgeDefinition{BadgeKey: key},
		Tier:             tier,
		AchievementData:  data,
		SourceProjectIDs: projectIDs,
	}
}

func TestPrintProjectBatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProjectBatch("Checkout Revamp", 3, []types.UserBadgeWithDetails{
		sampleAward("performance_tuner", types.TierSilver,
			map[string]any{types.AchievementKeyReason: "latency cut by 60%"}, uuid.New()),
	})

	out := buf.String()
	assert.Contains(t, out, "PROJECT BADGE EVALUATION")
	assert.Contains(t, out, "Checkout Revamp")
	assert.Contains(t, out, "Candidates: 3")
	assert.Contains(t, out, "performance_tuner (silver)")
	assert.Contains(t, out, "latency cut by 60%")
}

func TestPrintProjectBatch_UnnamedProject(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProjectBatch("", 1, nil)

	assert.Contains(t, buf.String(), "(unnamed project)")
	assert.Contains(t, buf.String(), "Earned:     0")
}

func TestPrintCalculationSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	userID := uuid.New()
	p.PrintCalculationSummary(userID, types.SubscriptionFree, []types.UserBadgeWithDetails{
		sampleAward("performance_tuner", types.TierBronze,
			map[string]any{types.AchievementKeyEligibleTier: "gold"}, uuid.New()),
		sampleAward("serial_shipper", types.TierSilver, nil),
	})

	out := buf.String()
	assert.Contains(t, out, "BADGE CALCULATION SUMMARY")
	assert.Contains(t, out, userID.String()[:8])
	assert.Contains(t, out, "Subscription: free")
	assert.Contains(t, out, "eligible gold")
	assert.Contains(t, out, "serial_shipper (silver) [aggregate]")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := make([]byte, 2*boxWidth)
	for i := range long {
		long[i] = 'x'
	}
	p.printBox("TITLE", string(long))

	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		assert.LessOrEqual(t, len(bytes.Runes(line)), boxWidth, "box lines stay within width")
	}
}
