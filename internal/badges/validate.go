package badges

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/jonathan/badge-engine/internal/schemas"
	"github.com/jonathan/badge-engine/internal/types"
)

// earnedBadgeEntry is one loosely-typed entry from a project batch
// response. Fields are validated individually; a bad entry is dropped,
// never fatal for the batch.
type earnedBadgeEntry struct {
	Key    string `json:"key"`
	Tier   string `json:"tier"`
	Reason string `json:"reason"`
}

// projectBatchResponse is the envelope for single-project batch results.
// Entries stay raw so one ill-typed entry cannot sink its siblings.
type projectBatchResponse struct {
	EarnedBadges []json.RawMessage `json:"earned_badges"`
}

// aggregateResponse is the envelope for one aggregate badge result.
type aggregateResponse struct {
	Earned *bool  `json:"earned"`
	Tier   string `json:"tier"`
	Reason string `json:"reason"`
}

// qualification is one validated badge determination, pre-capping.
type qualification struct {
	Badge  types.BadgeDefinition
	Tier   types.BadgeTier
	Reason string
}

// parseProjectBatchResponse parses and validates the raw response text for
// one project's batch. Envelope violations fail the whole batch (the
// caller converts that to zero results); entry violations drop only the
// offending entry.
func parseProjectBatchResponse(raw string, candidates []types.BadgeDefinition) ([]qualification, error) {
	if err := schemas.ValidateResponse(schemas.ProjectBatchResponse, raw); err != nil {
		return nil, fmt.Errorf("project batch response failed schema check: %w", err)
	}

	var resp projectBatchResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse project batch response: %w", err)
	}

	byKey := make(map[string]types.BadgeDefinition, len(candidates))
	for _, badge := range candidates {
		byKey[badge.BadgeKey] = badge
	}

	var quals []qualification
	for _, rawEntry := range resp.EarnedBadges {
		var entry earnedBadgeEntry
		if err := json.Unmarshal(rawEntry, &entry); err != nil {
			log.Printf("dropping ill-typed earned-badge entry: %v", err)
			continue
		}
		badge, known := byKey[entry.Key]
		if !known {
			log.Printf("dropping earned-badge entry with unknown key %q", entry.Key)
			continue
		}
		tier, ok := types.ParseBadgeTier(entry.Tier)
		if !ok {
			log.Printf("dropping earned-badge entry %q with invalid tier %q", entry.Key, entry.Tier)
			continue
		}
		quals = append(quals, qualification{Badge: badge, Tier: tier, Reason: entry.Reason})
	}
	return quals, nil
}

// parseAggregateResponse parses and validates the raw response text for
// one aggregate badge. Any violation, a false earned flag included, means
// not earned; only the first return being non-nil signals an award.
func parseAggregateResponse(raw string, badge types.BadgeDefinition) (*qualification, error) {
	if err := schemas.ValidateResponse(schemas.AggregateResponse, raw); err != nil {
		return nil, fmt.Errorf("aggregate response failed schema check: %w", err)
	}

	var resp aggregateResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse aggregate response: %w", err)
	}

	if resp.Earned == nil || !*resp.Earned {
		return nil, nil
	}
	tier, ok := types.ParseBadgeTier(resp.Tier)
	if !ok {
		log.Printf("dropping aggregate result for %q with invalid tier %q", badge.BadgeKey, resp.Tier)
		return nil, nil
	}

	return &qualification{Badge: badge, Tier: tier, Reason: resp.Reason}, nil
}
