package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// GetUsageStats is the use case interface for reading the daily generation quota.
type GetUsageStats interface {
	Query(ctx context.Context) (domain.UsageStats, error)
}

// GetUsageStatsImpl is the implementation of the GetUsageStats use case.
type GetUsageStatsImpl struct {
	usage *UsageTracker
}

// NewGetUsageStatsImpl creates a new instance of GetUsageStatsImpl.
func NewGetUsageStatsImpl(u *UsageTracker) GetUsageStatsImpl {
	return GetUsageStatsImpl{usage: u}
}

// Query rolls the counter over if needed and returns the usage statistics.
func (gu GetUsageStatsImpl) Query(ctx context.Context) (domain.UsageStats, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	return gu.usage.Stats(spanCtx), nil
}

// InitGetUsageStats initializes the GetUsageStats use case and registers it in the dependency container.
type InitGetUsageStats struct {
	Usage *UsageTracker `resolve:""`
}

// Initialize registers the GetUsageStats use case.
func (i InitGetUsageStats) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetUsageStats](NewGetUsageStatsImpl(i.Usage))
	return ctx, nil
}
