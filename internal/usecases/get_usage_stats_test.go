package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetUsageStatsImpl_Query(t *testing.T) {
	repo := domain.NewMockUsageRepository(t)
	tp := domain.NewMockCurrentTimeProvider(t)
	tp.EXPECT().Now().Return(fixedNow)
	repo.EXPECT().LoadUsage(mock.Anything).Return(domain.UsageCounter{Date: yesterday, Count: 10}, true, nil).Once()
	repo.EXPECT().SaveUsage(mock.Anything, domain.UsageCounter{Date: fixedToday, Count: 0}).Return(nil).Once()

	tracker := NewUsageTracker(repo, tp, discardLogger(), 500, false)
	tracker.Load(context.Background())

	gu := NewGetUsageStatsImpl(tracker)
	got, err := gu.Query(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.UsageStats{Used: 0, Remaining: 500, Limit: 500, Date: "2026-03-10"}, got)

	// a second read on the same day does not persist again
	got, err = gu.Query(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, got.Used)
}

func TestInitGetUsageStats_Initialize(t *testing.T) {
	igu := InitGetUsageStats{}

	ctx, err := igu.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[GetUsageStats]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
