// Package types defines the shared domain types for the badge engine.
package types

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CalculationType determines the scope a badge is evaluated over.
type CalculationType string

const (
	// CalcSingleProject badges are evaluated against the metrics of one project at a time.
	CalcSingleProject CalculationType = "single_project"
	// CalcAggregate badges are evaluated against all of a user's qualifying metrics.
	CalcAggregate CalculationType = "aggregate"
)

// BadgeDefinition is one entry in the badge catalog. The three threshold
// documents are opaque JSON interpreted only by the reasoning step; local
// code passes them through verbatim and never inspects their contents.
type BadgeDefinition struct {
	ID              uuid.UUID       `json:"id"`
	BadgeKey        string          `json:"badge_key"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category,omitempty"`
	Icon            string          `json:"icon,omitempty"`
	Color           string          `json:"color,omitempty"`
	CalculationType CalculationType `json:"calculation_type"`
	MetricType      string          `json:"metric_type"`
	BronzeThreshold json.RawMessage `json:"bronze_threshold"`
	SilverThreshold json.RawMessage `json:"silver_threshold"`
	GoldThreshold   json.RawMessage `json:"gold_threshold"`
}
