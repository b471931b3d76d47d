package usecases

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// UsageTracker owns the daily UsageCounter. Every read or mutation first checks for
// a date rollover, and every change is persisted before the lock is released.
// Persistence is best effort: failures are logged and the in-memory counter stays authoritative.
type UsageTracker struct {
	repo         domain.UsageRepository
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	limit        int
	enforce      bool

	mu      sync.Mutex
	counter domain.UsageCounter
}

// NewUsageTracker creates a tracker starting from a zero counter for today.
// Call Load to restore the persisted counter.
func NewUsageTracker(
	repo domain.UsageRepository,
	tp domain.CurrentTimeProvider,
	logger *log.Logger,
	limit int,
	enforce bool,
) *UsageTracker {
	return &UsageTracker{
		repo:         repo,
		timeProvider: tp,
		logger:       logger,
		limit:        limit,
		enforce:      enforce,
		counter:      domain.NewUsageCounter(tp.Now()),
	}
}

// Load restores the persisted counter. A missing or unreadable counter leaves {today, 0}.
func (u *UsageTracker) Load(ctx context.Context) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	u.mu.Lock()
	defer u.mu.Unlock()

	counter, found, err := u.repo.LoadUsage(spanCtx)
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		u.logger.Printf("UsageTracker: failed to load usage, starting from zero: %v", err)
		u.counter = domain.NewUsageCounter(u.timeProvider.Now())
		return
	}
	if !found {
		u.counter = domain.NewUsageCounter(u.timeProvider.Now())
		return
	}
	u.counter = counter
}

// RollOver resets and persists the counter when the day changed. It reports whether a reset happened.
func (u *UsageTracker) RollOver(ctx context.Context) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.rollOverLocked(ctx)
}

func (u *UsageTracker) rollOverLocked(ctx context.Context) bool {
	previous := u.counter
	if !u.counter.RollOver(u.timeProvider.Now()) {
		return false
	}
	RecordUsageRollover(ctx)
	u.logger.Printf("UsageTracker: new day %s, resetting counter (previous %s: %d calls)",
		u.counter.Date.Format(domain.UsageDateLayout),
		previous.Date.Format(domain.UsageDateLayout),
		previous.Count,
	)
	u.persistLocked(ctx)
	return true
}

// Stats returns the current usage after the rollover check.
func (u *UsageTracker) Stats(ctx context.Context) domain.UsageStats {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.rollOverLocked(ctx)
	return u.counter.Stats(u.limit)
}

// CheckQuota returns a *domain.QuotaExceededErr when enforcement is enabled and the
// daily limit has been reached. Without enforcement it never fails.
func (u *UsageTracker) CheckQuota(ctx context.Context) error {
	if !u.enforce {
		return nil
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.rollOverLocked(ctx)
	if u.counter.Count >= u.limit {
		return domain.NewQuotaExceededErr(fmt.Sprintf("daily generation limit of %d reached", u.limit))
	}
	return nil
}

// Increment counts one upstream call and persists the counter.
func (u *UsageTracker) Increment(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.rollOverLocked(ctx)
	u.counter.Count++
	u.persistLocked(ctx)
}

func (u *UsageTracker) persistLocked(ctx context.Context) {
	if err := u.repo.SaveUsage(ctx, u.counter); err != nil {
		u.logger.Printf("UsageTracker: failed to persist usage: %v", err)
	}
}

// InitUsageTracker initializes the UsageTracker, restores the persisted counter
// and registers it in the dependency container.
type InitUsageTracker struct {
	Repo         domain.UsageRepository     `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	DailyLimit   int                        `config:"GENERATION_DAILY_LIMIT" default:"500"`
	Enforce      string                     `config:"GENERATION_ENFORCE_DAILY_LIMIT" default:"false"`
}

// Initialize loads the counter and registers the tracker.
func (i InitUsageTracker) Initialize(ctx context.Context) (context.Context, error) {
	enforce, err := strconv.ParseBool(i.Enforce)
	if err != nil {
		return ctx, fmt.Errorf("invalid GENERATION_ENFORCE_DAILY_LIMIT %q: %w", i.Enforce, err)
	}
	tracker := NewUsageTracker(i.Repo, i.TimeProvider, i.Logger, i.DailyLimit, enforce)
	tracker.Load(ctx)
	depend.Register(tracker)
	return ctx, nil
}
