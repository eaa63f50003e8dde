package db

import (
	"context"
	"fmt"

	"github.com/jonathan/badge-engine/internal/types"
)

// FetchActiveBadges returns every active badge definition. Threshold
// documents come back as raw jsonb and stay opaque.
func (db *DB) FetchActiveBadges(ctx context.Context) ([]types.BadgeDefinition, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, badge_key, name, description,
		        COALESCE(category, ''), COALESCE(icon, ''), COALESCE(color, ''),
		        calculation_type, metric_type,
		        bronze_threshold, silver_threshold, gold_threshold
		 FROM badge_definitions
		 WHERE is_active = true
		 ORDER BY badge_key`)
	if err != nil {
		return nil, fmt.Errorf("failed to query badge definitions: %w", err)
	}
	defer rows.Close()

	var defs []types.BadgeDefinition
	for rows.Next() {
		var def types.BadgeDefinition
		var calcType string
		if err := rows.Scan(
			&def.ID, &def.BadgeKey, &def.Name, &def.Description,
			&def.Category, &def.Icon, &def.Color,
			&calcType, &def.MetricType,
			&def.BronzeThreshold, &def.SilverThreshold, &def.GoldThreshold,
		); err != nil {
			return nil, fmt.Errorf("failed to scan badge definition: %w", err)
		}
		def.CalculationType = types.CalculationType(calcType)
		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read badge definitions: %w", err)
	}
	return defs, nil
}
