package badges

import (
	"fmt"
	"strings"

	"github.com/jonathan/badge-engine/internal/prompts"
	"github.com/jonathan/badge-engine/internal/types"
)

// promptFile is the embedded template file for badge evaluation.
const promptFile = "badges.json"

// buildProjectBatchPrompt constructs the single-project batch prompt:
// project context, metric summaries, and every candidate badge with its
// three threshold documents passed through verbatim.
func buildProjectBatchPrompt(metrics []types.ProjectMetric, candidates []types.BadgeDefinition) string {
	var project types.ProjectContext
	if len(metrics) > 0 {
		project = metrics[0].Project
	}

	template := prompts.MustGet(promptFile, "evaluate-project-badges")
	return prompts.Format(template, map[string]string{
		"ProjectContext":  projectContextSummary(project),
		"MetricsSummary":  metricsSummary(metrics, false),
		"CandidateBadges": candidateBadgesSummary(candidates),
	})
}

// buildAggregatePrompt constructs the prompt for one aggregate badge over
// all matching metrics, each annotated with its project's context.
func buildAggregatePrompt(badge types.BadgeDefinition, metrics []types.ProjectMetric) string {
	template := prompts.MustGet(promptFile, "evaluate-aggregate-badge")
	return prompts.Format(template, map[string]string{
		"BadgeName":        badge.Name,
		"BadgeDescription": badge.Description,
		"BronzeThreshold":  thresholdText(badge.BronzeThreshold),
		"SilverThreshold":  thresholdText(badge.SilverThreshold),
		"GoldThreshold":    thresholdText(badge.GoldThreshold),
		"MetricsSummary":   metricsSummary(metrics, true),
	})
}

// projectContextSummary renders the compact project description shown to
// the reasoning step.
func projectContextSummary(p types.ProjectContext) string {
	var sb strings.Builder
	writeField := func(label, value string) {
		if value != "" {
			sb.WriteString(fmt.Sprintf("%s: %s\n", label, value))
		}
	}

	writeField("Name", p.Name)
	writeField("Company", p.Company)
	writeField("Role", p.Role)
	writeField("Problem", p.ProblemStatement)
	if len(p.TechStack) > 0 {
		writeField("Tech stack", strings.Join(p.TechStack, ", "))
	}
	if p.TeamSize > 0 {
		writeField("Team size", fmt.Sprintf("%d", p.TeamSize))
	}

	if sb.Len() == 0 {
		return "Not specified"
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// metricsSummary renders one line block per metric. The structured
// document is included verbatim when present; the legacy scalar is always
// labeled as such so the prompt-level instruction about it can bite.
func metricsSummary(metrics []types.ProjectMetric, withProject bool) string {
	if len(metrics) == 0 {
		return "No metrics recorded"
	}

	var blocks []string
	for i := range metrics {
		m := &metrics[i]
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("- metric_type: %s\n", m.EffectiveType()))
		if withProject {
			sb.WriteString(fmt.Sprintf("  project: %s", m.Project.Name))
			if m.Project.Company != "" {
				sb.WriteString(fmt.Sprintf(" at %s", m.Project.Company))
			}
			sb.WriteString("\n")
			if m.Project.ProblemStatement != "" {
				sb.WriteString(fmt.Sprintf("  project description: %s\n", m.Project.ProblemStatement))
			}
			if len(m.Project.TechStack) > 0 {
				sb.WriteString(fmt.Sprintf("  tech stack: %s\n", strings.Join(m.Project.TechStack, ", ")))
			}
		}
		if m.HasStructuredData() {
			sb.WriteString(fmt.Sprintf("  metric_data (structured before/after): %s\n", string(m.MetricData)))
		}
		if m.PrimaryValue != nil {
			sb.WriteString(fmt.Sprintf("  legacy scalar (rounded, context only): %g", *m.PrimaryValue))
			if m.Label != "" {
				sb.WriteString(fmt.Sprintf(" %s", m.Label))
			}
			if m.Detail != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", m.Detail))
			}
			sb.WriteString("\n")
		}
		blocks = append(blocks, strings.TrimSuffix(sb.String(), "\n"))
	}
	return strings.Join(blocks, "\n")
}

// candidateBadgesSummary renders each candidate badge with its key and
// the three threshold documents unmodified.
func candidateBadgesSummary(candidates []types.BadgeDefinition) string {
	var blocks []string
	for _, badge := range candidates {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("- key: %s\n", badge.BadgeKey))
		sb.WriteString(fmt.Sprintf("  name: %s\n", badge.Name))
		if badge.Description != "" {
			sb.WriteString(fmt.Sprintf("  description: %s\n", badge.Description))
		}
		sb.WriteString(fmt.Sprintf("  metric_type: %s\n", badge.MetricType))
		sb.WriteString(fmt.Sprintf("  bronze_threshold: %s\n", thresholdText(badge.BronzeThreshold)))
		sb.WriteString(fmt.Sprintf("  silver_threshold: %s\n", thresholdText(badge.SilverThreshold)))
		sb.WriteString(fmt.Sprintf("  gold_threshold: %s", thresholdText(badge.GoldThreshold)))
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n")
}

// thresholdText passes a threshold document through verbatim. Thresholds
// are opaque to local code; an absent document is shown as null.
func thresholdText(raw []byte) string {
	if len(raw) == 0 {
		return "null"
	}
	return string(raw)
}
