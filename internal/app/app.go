package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/outbound/corpus"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/outbound/random"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/adapters/outbound/usagestore"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/usecases"
)

// NewCommentApp creates and returns a new instance of the comment recommender application.
// Initializers passed by the caller run first, so tests can register replacements.
func NewCommentApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitDotEnv{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&time.InitCurrentTimeProvider{},
			&random.InitRandomSource{},
			&postgres.InitDB{},
			&usagestore.InitUsageRepository{},
			&corpus.InitCorpusRepository{},
			&modelrunner.InitSemanticEncoder{},
			&modelrunner.InitCommentGenerator{},

			&usecases.InitUsageTracker{},
			&usecases.InitSearchComments{},
			&usecases.InitGenerateComment{},
			&usecases.InitFallbackComment{},
			&usecases.InitBrowseComments{},
			&usecases.InitListStyles{},
			&usecases.InitGetUsageStats{},
		).
		Host(
			&http.CommentAppServer{},
			&workers.UsageRolloverWatcher{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
