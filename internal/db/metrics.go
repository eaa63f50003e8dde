package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/badge-engine/internal/types"
)

// FetchMetrics returns a user's recorded project metrics, each joined
// with its owning project's context. A non-empty projectIDs slice
// restricts the result to those projects before any other step.
func (db *DB) FetchMetrics(ctx context.Context, userID uuid.UUID, projectIDs []uuid.UUID) ([]types.ProjectMetric, error) {
	// A nil slice disables filtering; pgx encodes it as NULL.
	var filter []uuid.UUID
	if len(projectIDs) > 0 {
		filter = projectIDs
	}

	rows, err := db.pool.Query(ctx,
		`SELECT pm.id, pm.project_id,
		        COALESCE(pm.metric_type, ''), COALESCE(pm.type, ''),
		        pm.metric_data,
		        pm.primary_value, COALESCE(pm.label, ''), COALESCE(pm.detail, ''),
		        p.id, p.name, COALESCE(p.company, ''), COALESCE(p.role, ''),
		        COALESCE(p.problem_statement, ''), COALESCE(p.tech_stack, '{}'),
		        COALESCE(p.team_size, 0)
		 FROM project_metrics pm
		 JOIN projects p ON p.id = pm.project_id
		 WHERE p.user_id = $1
		   AND ($2::uuid[] IS NULL OR pm.project_id = ANY($2))
		 ORDER BY pm.project_id, pm.created_at`,
		userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query project metrics: %w", err)
	}
	defer rows.Close()

	var metrics []types.ProjectMetric
	for rows.Next() {
		var m types.ProjectMetric
		if err := rows.Scan(
			&m.ID, &m.ProjectID,
			&m.MetricType, &m.Type,
			&m.MetricData,
			&m.PrimaryValue, &m.Label, &m.Detail,
			&m.Project.ID, &m.Project.Name, &m.Project.Company, &m.Project.Role,
			&m.Project.ProblemStatement, &m.Project.TechStack,
			&m.Project.TeamSize,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project metric: %w", err)
		}
		metrics = append(metrics, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project metrics: %w", err)
	}
	return metrics, nil
}
