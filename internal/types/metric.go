package types

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ProjectContext carries the project fields surfaced to the reasoning step
// so it can judge a metric in context.
type ProjectContext struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Company          string    `json:"company,omitempty"`
	Role             string    `json:"role,omitempty"`
	ProblemStatement string    `json:"problem_statement,omitempty"`
	TechStack        []string  `json:"tech_stack,omitempty"`
	TeamSize         int       `json:"team_size,omitempty"`
}

// ProjectMetric is one recorded measurement belonging to exactly one
// project. Newer rows carry a structured MetricData document with
// before/after/primary values; older rows carry only the legacy scalar
// triple (PrimaryValue, Label, Detail). Both can coexist on one row.
type ProjectMetric struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`

	// MetricType is the current tag field. Type is the pre-migration field
	// name some rows still use; EffectiveType prefers MetricType.
	MetricType string `json:"metric_type,omitempty"`
	Type       string `json:"type,omitempty"`

	MetricData json.RawMessage `json:"metric_data,omitempty"`

	// Legacy scalar representation.
	PrimaryValue *float64 `json:"primary_value,omitempty"`
	Label        string   `json:"label,omitempty"`
	Detail       string   `json:"detail,omitempty"`

	Project ProjectContext `json:"project"`
}

// EffectiveType returns the metric's type tag, preferring the current
// field over the legacy one. An empty result excludes the metric from
// candidate selection entirely.
func (m *ProjectMetric) EffectiveType() string {
	if m.MetricType != "" {
		return m.MetricType
	}
	return m.Type
}

// HasStructuredData reports whether the metric carries a non-empty
// structured document.
func (m *ProjectMetric) HasStructuredData() bool {
	return len(m.MetricData) > 0 && string(m.MetricData) != "null"
}
