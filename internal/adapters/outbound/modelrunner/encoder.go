package modelrunner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BreakerSettings configures the circuit breaker in front of the embeddings endpoint.
type BreakerSettings struct {
	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open before a trial request.
	OpenTimeout time.Duration
}

// SemanticEncoder implements domain.SemanticEncoder on top of the embeddings endpoint.
// While the breaker is open the encoder reports itself unavailable.
type SemanticEncoder struct {
	client  DRMAPIClient
	model   string
	breaker *gobreaker.CircuitBreaker[domain.EmbeddingVector]
}

// NewSemanticEncoder creates a SemanticEncoder for the given default model.
func NewSemanticEncoder(client DRMAPIClient, model string, bs BreakerSettings, logger *log.Logger) *SemanticEncoder {
	threshold := bs.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	return &SemanticEncoder{
		client: client,
		model:  model,
		breaker: gobreaker.NewCircuitBreaker[domain.EmbeddingVector](gobreaker.Settings{
			Name:        "semantic-encoder",
			MaxRequests: 1,
			Timeout:     bs.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Printf("SemanticEncoder: breaker %s changed from %s to %s", name, from, to)
			},
		}),
	}
}

// Availability reports whether queries can be embedded right now.
func (e *SemanticEncoder) Availability() domain.EncoderAvailability {
	switch {
	case !configured(e.model):
		return domain.EncoderUnavailable("no embedding model configured")
	case !e.client.Configured():
		return domain.EncoderUnavailable("no model host configured")
	case e.breaker.State() == gobreaker.StateOpen:
		return domain.EncoderUnavailable("embedding service unavailable")
	}
	return domain.EncoderAvailable
}

// VectorizeQuery embeds a search query. An empty model selects the encoder default.
func (e *SemanticEncoder) VectorizeQuery(ctx context.Context, model, query string) (domain.EmbeddingVector, error) {
	if !configured(model) {
		model = e.model
	}
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model", model),
	))
	defer span.End()

	if !configured(model) {
		err := errors.New("no embedding model configured")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}

	vec, err := e.breaker.Execute(func() (domain.EmbeddingVector, error) {
		return e.embed(spanCtx, model, queryPrompterFor(model).QueryPrompt(query))
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

func (e *SemanticEncoder) embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	resp, err := e.client.Embeddings(ctx, EmbeddingsRequest{Model: model, Input: input})
	if err != nil {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Data) == 0 {
		return domain.EmbeddingVector{}, errors.New("no embedding data in response")
	}
	if len(resp.Data[0].Embedding) == 0 {
		return domain.EmbeddingVector{}, fmt.Errorf("empty embedding returned by %s", model)
	}
	return domain.EmbeddingVector{
		Vector:      resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// InitSemanticEncoder initializes the semantic encoder used by search and fallback.
type InitSemanticEncoder struct {
	HttpClient       *http.Client  `resolve:""`
	Logger           *log.Logger   `resolve:""`
	ModelHost        string        `config:"LLM_MODEL_HOST" default:"-"`
	Model            string        `config:"LLM_EMBEDDING_MODEL" default:"-"`
	CacheSize        int           `config:"EMBEDDING_CACHE_SIZE" default:"512"`
	CacheTTL         time.Duration `config:"EMBEDDING_CACHE_TTL" default:"10m"`
	FailureThreshold int           `config:"EMBEDDING_BREAKER_FAILURES" default:"5"`
	OpenTimeout      time.Duration `config:"EMBEDDING_BREAKER_TIMEOUT" default:"30s"`
}

// Initialize registers the domain.SemanticEncoder in the dependency container.
func (i InitSemanticEncoder) Initialize(ctx context.Context) (context.Context, error) {
	encoder := NewSemanticEncoder(
		NewDRMAPIClient(i.ModelHost, "", i.HttpClient),
		i.Model,
		BreakerSettings{
			FailureThreshold: uint32(max(i.FailureThreshold, 1)),
			OpenTimeout:      i.OpenTimeout,
		},
		i.Logger,
	)
	if a := encoder.Availability(); !a.Available {
		i.Logger.Printf("InitSemanticEncoder: smart search disabled: %s", a.Reason)
	}
	depend.Register[domain.SemanticEncoder](NewCachedEncoder(encoder, i.CacheSize, i.CacheTTL))
	return ctx, nil
}
