package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/usecases"
)

// DefaultRolloverCheckInterval is used when the configured interval is not positive.
const DefaultRolloverCheckInterval = time.Minute

// UsageRolloverWatcher is a runnable that resets the daily generation counter
// shortly after midnight, even when no request arrives to trigger the rollover.
type UsageRolloverWatcher struct {
	Usage               *usecases.UsageTracker `resolve:""`
	Logger              *log.Logger            `resolve:""`
	Interval            time.Duration          `config:"USAGE_ROLLOVER_CHECK_INTERVAL" default:"1m"`
	workerExecutionChan chan bool
}

// Run checks for a date change on every tick until ctx is done.
func (w UsageRolloverWatcher) Run(ctx context.Context) error {
	w.Logger.Println("UsageRolloverWatcher: running...")
	ticker := time.NewTicker(w.checkInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rolled := w.Usage.RollOver(ctx)
			if w.workerExecutionChan != nil {
				select {
				case w.workerExecutionChan <- rolled:
				case <-ctx.Done():
				}
			}
		case <-ctx.Done():
			w.Logger.Println("UsageRolloverWatcher: stopping...")
			return nil
		}
	}
}

func (w UsageRolloverWatcher) checkInterval() time.Duration {
	if w.Interval <= 0 {
		w.Logger.Printf("UsageRolloverWatcher: invalid interval %s, using %s", w.Interval, DefaultRolloverCheckInterval)
		return DefaultRolloverCheckInterval
	}
	return w.Interval
}
