package badges

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/badge-engine/internal/types"
)

// partitionCatalog splits the active catalog by calculation class.
// Definitions with an unknown calculation type are ignored.
func partitionCatalog(defs []types.BadgeDefinition) (single, aggregate []types.BadgeDefinition) {
	for _, def := range defs {
		switch def.CalculationType {
		case types.CalcSingleProject:
			single = append(single, def)
		case types.CalcAggregate:
			aggregate = append(aggregate, def)
		}
	}
	return single, aggregate
}

// groupMetricsByProject buckets metrics under their owning project.
func groupMetricsByProject(metrics []types.ProjectMetric) map[uuid.UUID][]types.ProjectMetric {
	grouped := make(map[uuid.UUID][]types.ProjectMetric)
	for _, m := range metrics {
		grouped[m.ProjectID] = append(grouped[m.ProjectID], m)
	}
	return grouped
}

// sortedProjectIDs returns the grouped project IDs in a stable order so
// evaluation (and its logs) are deterministic across runs.
func sortedProjectIDs(grouped map[uuid.UUID][]types.ProjectMetric) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}

// candidatesForProject returns the single-project badges whose metric
// type is present among the project's metrics. Metrics with an empty
// effective type contribute nothing, so a project without any relevant
// metric yields no candidates and therefore no reasoning request.
func candidatesForProject(metrics []types.ProjectMetric, badges []types.BadgeDefinition) []types.BadgeDefinition {
	present := make(map[string]bool, len(metrics))
	for i := range metrics {
		if mt := metrics[i].EffectiveType(); mt != "" {
			present[mt] = true
		}
	}

	var candidates []types.BadgeDefinition
	for _, badge := range badges {
		if present[badge.MetricType] {
			candidates = append(candidates, badge)
		}
	}
	return candidates
}

// metricsForAggregate returns every metric whose type matches the
// aggregate badge, regardless of project. EffectiveType covers both the
// current and the legacy field name.
func metricsForAggregate(metrics []types.ProjectMetric, badge types.BadgeDefinition) []types.ProjectMetric {
	var matching []types.ProjectMetric
	for _, m := range metrics {
		if mt := m.EffectiveType(); mt != "" && mt == badge.MetricType {
			matching = append(matching, m)
		}
	}
	return matching
}
