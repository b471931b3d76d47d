package time

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// LocalZone selects the process local time zone.
const LocalZone = "Local"

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider that reports
// the wall clock in a fixed location. The location decides where "today" starts for
// the daily usage counter.
type CurrentTimeProvider struct {
	loc *time.Location
}

// NewCurrentTimeProvider creates a CurrentTimeProvider for loc. A nil loc means time.Local.
func NewCurrentTimeProvider(loc *time.Location) CurrentTimeProvider {
	if loc == nil {
		loc = time.Local
	}
	return CurrentTimeProvider{loc: loc}
}

// Now returns the current time in the provider location.
func (ts CurrentTimeProvider) Now() time.Time {
	if ts.loc == nil {
		return time.Now()
	}
	return time.Now().In(ts.loc)
}

// LoadLocation resolves an IANA zone name. Empty and "Local" map to time.Local.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == LocalZone {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", name, err)
	}
	return loc, nil
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	TimeZone string `config:"APP_TIMEZONE" default:"Local"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	loc, err := LoadLocation(its.TimeZone)
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(loc))
	return ctx, nil
}
