// Package badges implements the badge qualification and tier-assignment
// engine. It groups a user's project metrics, selects candidate badges,
// delegates threshold evaluation to the reasoning service, tolerantly
// parses the structured responses, applies the subscription tier cap, and
// assembles the awarded-badge records.
package badges

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/badge-engine/internal/llm"
	"github.com/jonathan/badge-engine/internal/observability"
	"github.com/jonathan/badge-engine/internal/types"
)

// MetricStore returns a user's recorded metrics, optionally restricted to
// specific projects.
type MetricStore interface {
	FetchMetrics(ctx context.Context, userID uuid.UUID, projectIDs []uuid.UUID) ([]types.ProjectMetric, error)
}

// BadgeCatalog returns the active badge definitions.
type BadgeCatalog interface {
	FetchActiveBadges(ctx context.Context) ([]types.BadgeDefinition, error)
}

// SubscriptionLookup returns a user's plan tier.
type SubscriptionLookup interface {
	FetchSubscriptionTier(ctx context.Context, userID uuid.UUID) (types.SubscriptionTier, error)
}

// Calculator orchestrates one badge calculation over a snapshot of
// catalog, metrics, and subscription tier. It holds no mutable state
// between invocations and performs no persistence.
type Calculator struct {
	catalog       BadgeCatalog
	metrics       MetricStore
	subscriptions SubscriptionLookup
	client        llm.Client
	printer       *observability.Printer
}

// NewCalculator wires the calculator's collaborators. printer may be nil
// to disable verbose evaluation traces.
func NewCalculator(catalog BadgeCatalog, metrics MetricStore, subscriptions SubscriptionLookup, client llm.Client, printer *observability.Printer) *Calculator {
	return &Calculator{
		catalog:       catalog,
		metrics:       metrics,
		subscriptions: subscriptions,
		client:        client,
		printer:       printer,
	}
}

// CalculateForUser computes the full set of badges the user has earned
// from the current snapshot. Catalog or metric fetch failures propagate;
// a failed subscription lookup defaults to free (the more restrictive
// tier); a failed reasoning unit costs only that unit's results.
func (c *Calculator) CalculateForUser(ctx context.Context, userID uuid.UUID, projectIDs []uuid.UUID) ([]types.UserBadgeWithDetails, error) {
	var (
		defs    []types.BadgeDefinition
		metrics []types.ProjectMetric
		tier    types.SubscriptionTier
	)

	// The three snapshot fetches are independent; only evaluation has to
	// be sequential.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		defs, err = c.catalog.FetchActiveBadges(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		metrics, err = c.metrics.FetchMetrics(gctx, userID, projectIDs)
		return err
	})
	g.Go(func() error {
		t, err := c.subscriptions.FetchSubscriptionTier(gctx, userID)
		if err != nil {
			log.Printf("subscription lookup failed for user %s, defaulting to free: %v", userID, err)
			tier = types.SubscriptionFree
			return nil
		}
		tier = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	single, aggregate := partitionCatalog(defs)
	byProject := groupMetricsByProject(metrics)

	results := make([]types.UserBadgeWithDetails, 0)

	for _, projectID := range sortedProjectIDs(byProject) {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		projectMetrics := byProject[projectID]
		candidates := candidatesForProject(projectMetrics, single)
		if len(candidates) == 0 {
			continue
		}

		awards, err := c.evaluateProjectBatch(ctx, projectID, projectMetrics, candidates, tier)
		if err != nil {
			log.Printf("skipping project batch: %v", err)
			continue
		}
		if c.printer != nil {
			c.printer.PrintProjectBatch(projectMetrics[0].Project.Name, len(candidates), awards)
		}
		results = append(results, awards...)
	}

	for _, badge := range aggregate {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		matching := metricsForAggregate(metrics, badge)
		if len(matching) == 0 {
			continue
		}

		award, err := c.evaluateAggregateBadge(ctx, badge, matching, tier)
		if err != nil {
			log.Printf("skipping aggregate badge: %v", err)
			continue
		}
		if award != nil {
			results = append(results, *award)
		}
	}

	if c.printer != nil {
		c.printer.PrintCalculationSummary(userID, tier, results)
	}
	return results, nil
}
