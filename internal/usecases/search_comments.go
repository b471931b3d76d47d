package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// overFetchFactor is how many nearest neighbors are fetched per requested result
// before diversity sampling.
const overFetchFactor = 3

// DatasetUnavailableMessage is returned when the corpus could not be loaded.
const DatasetUnavailableMessage = "System initializing or data missing. Please try again."

// ModelLoadingFailed is the placeholder result returned when the ranker is unavailable.
var ModelLoadingFailed = domain.CommentVariant{
	Comment: "Model loading failed.",
	Mood:    "Error",
	Style:   "Error",
}

// SearchStatus is the outcome of a search.
type SearchStatus string

const (
	SearchStatus_OK                 SearchStatus = "ok"
	SearchStatus_NoMatch            SearchStatus = "no_match"
	SearchStatus_DatasetUnavailable SearchStatus = "dataset_unavailable"
	SearchStatus_RankerUnavailable  SearchStatus = "ranker_unavailable"
)

// SearchParams are the inputs of a smart search. Empty Mood and Language are
// derived from the prompt.
type SearchParams struct {
	Prompt   string
	Mood     domain.Mood
	Language domain.Language
	TopK     int
}

// SearchResult is the structured outcome of a smart search. Message is set
// instead of Results when there is nothing to rank.
type SearchResult struct {
	Results       []domain.CommentVariant
	Message       string
	Status        SearchStatus
	DatasetLoaded bool
	Language      domain.Language
	Mood          domain.Mood
}

// NoMatchMessage is the message returned when no record matches language and mood.
func NoMatchMessage(language domain.Language, mood domain.Mood) string {
	return fmt.Sprintf("No matching %s %s comments found.", language, mood)
}

// SearchComments is the use case interface for the filtered semantic retrieval.
type SearchComments interface {
	Query(ctx context.Context, params SearchParams) (SearchResult, error)
}

// SearchCommentsImpl is the implementation of the SearchComments use case.
type SearchCommentsImpl struct {
	corpusRepo     domain.CorpusRepository
	encoder        domain.SemanticEncoder
	rnd            domain.RandomSource
	logger         *log.Logger
	embeddingModel string
	defaultTopK    int
}

// NewSearchCommentsImpl creates a new instance of SearchCommentsImpl.
func NewSearchCommentsImpl(
	cr domain.CorpusRepository,
	se domain.SemanticEncoder,
	rnd domain.RandomSource,
	l *log.Logger,
	embeddingModel string,
	defaultTopK int,
) SearchCommentsImpl {
	return SearchCommentsImpl{
		corpusRepo:     cr,
		encoder:        se,
		rnd:            rnd,
		logger:         l,
		embeddingModel: embeddingModel,
		defaultTopK:    defaultTopK,
	}
}

// Query classifies the prompt, restricts the corpus to the target language and mood,
// ranks the subset and decorates the picked comments. Missing data and an unavailable
// ranker are reported through the result status, not as errors.
func (sc SearchCommentsImpl) Query(ctx context.Context, params SearchParams) (SearchResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	topK := params.TopK
	if topK <= 0 {
		topK = sc.defaultTopK
	}

	language, mood := domain.ResolveTarget(params.Prompt, params.Mood, params.Language)
	result := SearchResult{Language: language, Mood: mood}

	corpus, err := sc.corpusRepo.Corpus(spanCtx)
	if err != nil {
		var dataErr *domain.DataUnavailableErr
		if !errors.As(err, &dataErr) {
			telemetry.RecordErrorAndStatus(span, err)
			return SearchResult{}, err
		}
		sc.logger.Printf("SearchComments: %v", err)
		result.Status = SearchStatus_DatasetUnavailable
		result.Message = DatasetUnavailableMessage
		RecordSearchRequest(spanCtx, result.Status)
		return result, nil
	}
	result.DatasetLoaded = true

	subset := corpus.Select(language, mood, "")
	if len(subset) == 0 {
		result.Status = SearchStatus_NoMatch
		result.Message = NoMatchMessage(language, mood)
		RecordSearchRequest(spanCtx, result.Status)
		return result, nil
	}

	picked, err := sc.rank(spanCtx, params.Prompt, corpus, subset, topK)
	if err != nil {
		var rankerErr *domain.RankerUnavailableErr
		if !errors.As(err, &rankerErr) {
			telemetry.RecordErrorAndStatus(span, err)
			return SearchResult{}, err
		}
		sc.logger.Printf("SearchComments: %v", err)
		result.Status = SearchStatus_RankerUnavailable
		result.Results = []domain.CommentVariant{ModelLoadingFailed}
		RecordSearchRequest(spanCtx, result.Status)
		return result, nil
	}

	result.Results = make([]domain.CommentVariant, 0, len(picked))
	for _, idx := range picked {
		record := corpus.Records[idx]
		style := record.Style
		if strings.TrimSpace(style) == "" {
			style = domain.DefaultSearchStyle
		}
		result.Results = append(result.Results, domain.CommentVariant{
			Comment: domain.DecorateWithEmojis(sc.rnd, record.Text, mood),
			Mood:    string(mood),
			Style:   style,
		})
	}
	result.Status = SearchStatus_OK
	RecordSearchRequest(spanCtx, result.Status)
	return result, nil
}

// rank returns corpus indices drawn from subset. An empty prompt samples the subset
// uniformly without touching the encoder. Otherwise the nearest min(3*topK, |subset|)
// rows are fetched and topK of them are sampled uniformly, so the result is not
// distance ordered.
func (sc SearchCommentsImpl) rank(ctx context.Context, prompt string, corpus *domain.Corpus, subset []int, topK int) ([]int, error) {
	if strings.TrimSpace(prompt) == "" {
		return domain.SampleFrom(sc.rnd, subset, topK), nil
	}

	availability := sc.encoder.Availability()
	if !availability.Available {
		return nil, domain.NewRankerUnavailableErr(availability.Reason, nil)
	}

	vec, err := sc.encoder.VectorizeQuery(ctx, sc.embeddingModel, prompt)
	if err != nil {
		return nil, domain.NewRankerUnavailableErr("query embedding failed", err)
	}
	RecordLLMTokensEmbedding(ctx, vec.TotalTokens)

	fetchK := min(overFetchFactor*topK, len(subset))
	neighbors, err := domain.NearestNeighbors(common.ToFloat32(vec.Vector), corpus.Embeddings, subset, fetchK)
	if err != nil {
		return nil, domain.NewRankerUnavailableErr("nearest neighbor search failed", err)
	}

	candidates := make([]int, len(neighbors))
	for i, n := range neighbors {
		candidates[i] = n.Index
	}
	if len(candidates) > topK {
		return domain.SampleFrom(sc.rnd, candidates, topK), nil
	}
	return candidates, nil
}

// InitSearchComments initializes the SearchComments use case and registers it in the dependency container.
type InitSearchComments struct {
	CorpusRepo        domain.CorpusRepository `resolve:""`
	Encoder           domain.SemanticEncoder  `resolve:""`
	Random            domain.RandomSource     `resolve:""`
	Logger            *log.Logger             `resolve:""`
	LLMEmbeddingModel string                  `config:"LLM_EMBEDDING_MODEL" default:"-"`
	DefaultTopK       int                     `config:"SEARCH_DEFAULT_TOP_K" default:"5"`
}

// Initialize registers the SearchComments use case.
func (i InitSearchComments) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SearchComments](NewSearchCommentsImpl(
		i.CorpusRepo,
		i.Encoder,
		i.Random,
		i.Logger,
		i.LLMEmbeddingModel,
		i.DefaultTopK,
	))
	return ctx, nil
}
