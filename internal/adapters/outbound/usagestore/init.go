package usagestore

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/outbound/postgres"
	apptime "github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"
)

// InitUsageRepository registers the domain.UsageRepository selected by USAGE_STORE.
type InitUsageRepository struct {
	Logger   *log.Logger `resolve:""`
	Store    string      `config:"USAGE_STORE" default:"file"`
	FilePath string      `config:"USAGE_FILE" default:"data/usage.json"`
	TimeZone string      `config:"APP_TIMEZONE" default:"Local"`
}

// Initialize registers the usage repository in the dependency container.
func (i InitUsageRepository) Initialize(ctx context.Context) (context.Context, error) {
	loc, err := apptime.LoadLocation(i.TimeZone)
	if err != nil {
		return ctx, err
	}

	switch i.Store {
	case StoreFile:
		depend.Register[domain.UsageRepository](NewFileStore(i.FilePath, loc))
		i.Logger.Printf("InitUsageRepository: using file store at %s", i.FilePath)
	case StorePostgres:
		db, err := depend.Resolve[*sql.DB]()
		if err != nil {
			return ctx, fmt.Errorf("resolve database for usage store: %w", err)
		}
		depend.Register[domain.UsageRepository](postgres.NewUsageRepository(db, loc))
		i.Logger.Println("InitUsageRepository: using postgres store")
	default:
		return ctx, fmt.Errorf("unknown usage store %q", i.Store)
	}
	return ctx, nil
}
