package workers

import (
	"bytes"
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUsageRolloverWatcher_Run(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)

	tp := domain.NewMockCurrentTimeProvider(t)
	tp.EXPECT().Now().Return(day1).Twice()
	tp.EXPECT().Now().Return(day2)

	repo := domain.NewMockUsageRepository(t)
	repo.EXPECT().SaveUsage(mock.Anything, domain.UsageCounter{Date: domain.DateOnly(day2), Count: 0}).Return(nil).Once()

	logger := log.New(io.Discard, "", 0)
	tracker := usecases.NewUsageTracker(repo, tp, logger, 20, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChan := make(chan bool)
	w := UsageRolloverWatcher{
		Usage:               tracker,
		Logger:              logger,
		Interval:            2 * time.Millisecond,
		workerExecutionChan: signalChan,
	}

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	var results []bool
	for range 3 {
		select {
		case rolled := <-signalChan:
			results = append(results, rolled)
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for rollover check")
		}
	}
	cancel()

	assert.Equal(t, []bool{false, true, false}, results)
	assert.NoError(t, <-done)
	assert.Equal(t, "2026-03-11", tracker.Stats(context.Background()).Date)
}

func TestUsageRolloverWatcher_NonPositiveInterval(t *testing.T) {
	tests := map[string]struct {
		interval time.Duration
	}{
		"zero":     {interval: 0},
		"negative": {interval: -5 * time.Second},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tp := domain.NewMockCurrentTimeProvider(t)
			tp.EXPECT().Now().Return(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

			var buf bytes.Buffer
			logger := log.New(&buf, "", 0)
			w := UsageRolloverWatcher{
				Usage:    usecases.NewUsageTracker(domain.NewMockUsageRepository(t), tp, logger, 20, false),
				Logger:   logger,
				Interval: tt.interval,
			}

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() {
				done <- w.Run(ctx)
			}()
			time.Sleep(10 * time.Millisecond)
			cancel()

			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(time.Second):
				t.Fatal("watcher did not stop")
			}
			assert.Contains(t, buf.String(), "UsageRolloverWatcher: invalid interval")
		})
	}
}
