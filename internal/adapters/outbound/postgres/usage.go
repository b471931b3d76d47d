package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// usageRowID is the id of the single counter row.
const usageRowID = 1

var (
	usageFields = []string{
		"usage_date",
		"count",
	}
)

// UsageRepository is a PostgreSQL implementation of domain.UsageRepository.
type UsageRepository struct {
	db    *sql.DB
	pqsql squirrel.StatementBuilderType
	loc   *time.Location
}

// NewUsageRepository creates a new instance of UsageRepository. Stored dates are
// interpreted in loc.
func NewUsageRepository(db *sql.DB, loc *time.Location) UsageRepository {
	return UsageRepository{
		db:    db,
		pqsql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
		loc:   loc,
	}
}

// LoadUsage retrieves the stored counter.
func (ur UsageRepository) LoadUsage(ctx context.Context) (domain.UsageCounter, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var (
		date  time.Time
		count int
	)
	err := ur.pqsql.
		Select(usageFields...).
		From("generation_usage").
		Where(squirrel.Eq{"id": usageRowID}).
		QueryRowContext(spanCtx).
		Scan(&date, &count)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.UsageCounter{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.UsageCounter{}, false, domain.NewPersistenceErr("load usage", err)
	}

	y, m, d := date.Date()
	return domain.UsageCounter{
		Date:  time.Date(y, m, d, 0, 0, 0, 0, ur.loc),
		Count: count,
	}, true, nil
}

// SaveUsage stores the counter, replacing the previous one.
func (ur UsageRepository) SaveUsage(ctx context.Context, counter domain.UsageCounter) error {
	date := counter.Date.Format(domain.UsageDateLayout)
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("usage_date", date),
		attribute.Int("count", counter.Count),
	))
	defer span.End()

	_, err := ur.pqsql.
		Insert("generation_usage").
		Columns("id", "usage_date", "count", "updated_at").
		Values(usageRowID, date, counter.Count, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
            usage_date = EXCLUDED.usage_date,
            count = EXCLUDED.count,
            updated_at = EXCLUDED.updated_at`).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.NewPersistenceErr("save usage", fmt.Errorf("upsert generation_usage: %w", err))
	}
	return nil
}
