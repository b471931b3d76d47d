package domain

import (
	"context"
	"time"
)

// UsageDateLayout is the on-disk layout of UsageCounter.Date.
const UsageDateLayout = time.DateOnly

// UsageCounter counts upstream generation calls made since midnight of Date.
type UsageCounter struct {
	Date  time.Time
	Count int
}

// NewUsageCounter returns a zero counter for the day of now.
func NewUsageCounter(now time.Time) UsageCounter {
	return UsageCounter{Date: DateOnly(now), Count: 0}
}

// IsCurrent reports whether the counter belongs to the day of now.
func (u UsageCounter) IsCurrent(now time.Time) bool {
	y1, m1, d1 := u.Date.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// RollOver resets the counter when now is on a different day. It reports whether a reset happened.
func (u *UsageCounter) RollOver(now time.Time) bool {
	if u.IsCurrent(now) {
		return false
	}
	*u = NewUsageCounter(now)
	return true
}

// Stats returns the usage statistics against the given daily limit.
func (u UsageCounter) Stats(limit int) UsageStats {
	return UsageStats{
		Used:      u.Count,
		Remaining: max(0, limit-u.Count),
		Limit:     limit,
		Date:      u.Date.Format(UsageDateLayout),
	}
}

// UsageStats is the read-only view of the daily quota.
type UsageStats struct {
	Used      int
	Remaining int
	Limit     int
	Date      string
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// UsageRepository persists the usage counter.
type UsageRepository interface {
	// LoadUsage returns the stored counter. found is false when nothing is stored yet.
	LoadUsage(ctx context.Context) (counter UsageCounter, found bool, err error)
	// SaveUsage stores the counter, replacing any previous value.
	SaveUsage(ctx context.Context, counter UsageCounter) error
}
