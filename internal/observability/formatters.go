// Package observability provides formatted output utilities for verbose
// CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/badge-engine/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProjectBatch outputs the outcome of one project's batched badge
// evaluation.
func (p *Printer) PrintProjectBatch(projectName string, candidateCount int, awards []types.UserBadgeWithDetails) {
	var sb strings.Builder

	name := projectName
	if name == "" {
		name = "(unnamed project)"
	}
	sb.WriteString(fmt.Sprintf("Project:    %s\n", name))
	sb.WriteString(fmt.Sprintf("Candidates: %d\n", candidateCount))
	sb.WriteString(fmt.Sprintf("Earned:     %d\n", len(awards)))

	for _, award := range awards {
		sb.WriteString(fmt.Sprintf("  • %s (%s)\n", award.Badge.BadgeKey, award.Tier))
		if reason, ok := award.AchievementData[types.AchievementKeyReason].(string); ok && reason != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", reason))
		}
	}

	p.printBox("PROJECT BADGE EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCalculationSummary outputs the final result set for a calculation
// run, flagging any awards whose displayed tier was capped.
func (p *Printer) PrintCalculationSummary(userID uuid.UUID, tier types.SubscriptionTier, results []types.UserBadgeWithDetails) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("User:         %s\n", userID))
	sb.WriteString(fmt.Sprintf("Subscription: %s\n", tier))
	sb.WriteString(fmt.Sprintf("Badges:       %d\n", len(results)))

	for _, award := range results {
		line := fmt.Sprintf("  • %s (%s", award.Badge.BadgeKey, award.Tier)
		if eligible, ok := award.AchievementData[types.AchievementKeyEligibleTier].(string); ok {
			line += fmt.Sprintf(", eligible %s", eligible)
		}
		line += ")"
		if len(award.SourceProjectIDs) == 0 {
			line += " [aggregate]"
		}
		sb.WriteString(line + "\n")
	}

	p.printBox("BADGE CALCULATION SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
