package usecases

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// NoSuitableCommentMessage is returned when no record matches mood and language.
const NoSuitableCommentMessage = "Sorry, I couldn't find a suitable comment for this mood and language."

// FallbackResult is the single comment picked from the corpus.
type FallbackResult struct {
	Comment       string
	Found         bool
	DatasetLoaded bool
}

// FallbackComment is the use case interface for the exact-match fallback ranker.
type FallbackComment interface {
	Execute(ctx context.Context, params GenerateParams) (FallbackResult, error)
}

// FallbackCommentImpl is the implementation of the FallbackComment use case.
type FallbackCommentImpl struct {
	corpusRepo     domain.CorpusRepository
	encoder        domain.SemanticEncoder
	rnd            domain.RandomSource
	logger         *log.Logger
	embeddingModel string
}

// NewFallbackCommentImpl creates a new instance of FallbackCommentImpl.
func NewFallbackCommentImpl(
	cr domain.CorpusRepository,
	se domain.SemanticEncoder,
	rnd domain.RandomSource,
	l *log.Logger,
	embeddingModel string,
) FallbackCommentImpl {
	return FallbackCommentImpl{
		corpusRepo:     cr,
		encoder:        se,
		rnd:            rnd,
		logger:         l,
		embeddingModel: embeddingModel,
	}
}

// Execute picks the record most similar to the context, or a random record when
// there is no context or no encoder. Missing data yields the fixed message.
func (fc FallbackCommentImpl) Execute(ctx context.Context, params GenerateParams) (FallbackResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	corpus, err := fc.corpusRepo.Corpus(spanCtx)
	if err != nil {
		var dataErr *domain.DataUnavailableErr
		if !errors.As(err, &dataErr) {
			telemetry.RecordErrorAndStatus(span, err)
			return FallbackResult{}, err
		}
		fc.logger.Printf("FallbackComment: %v", err)
		return FallbackResult{Comment: NoSuitableCommentMessage}, nil
	}

	subset := corpus.Select(domain.NewLanguage(params.Language), domain.Mood(params.Mood), "")
	if len(subset) == 0 {
		return FallbackResult{Comment: NoSuitableCommentMessage, DatasetLoaded: true}, nil
	}

	if strings.TrimSpace(params.Context) != "" {
		if idx, ok := fc.bestMatch(spanCtx, corpus, subset, params.Context); ok {
			return FallbackResult{Comment: corpus.Records[idx].Text, Found: true, DatasetLoaded: true}, nil
		}
	}

	idx := subset[fc.rnd.IntN(len(subset))]
	return FallbackResult{Comment: corpus.Records[idx].Text, Found: true, DatasetLoaded: true}, nil
}

// bestMatch scans subset linearly for the highest cosine similarity to the context.
// Ties keep the first record seen. It reports false when the encoder is unavailable
// or no record could be scored.
func (fc FallbackCommentImpl) bestMatch(ctx context.Context, corpus *domain.Corpus, subset []int, text string) (int, bool) {
	availability := fc.encoder.Availability()
	if !availability.Available {
		return 0, false
	}

	vec, err := fc.encoder.VectorizeQuery(ctx, fc.embeddingModel, text)
	if err != nil {
		fc.logger.Printf("FallbackComment: semantic match failed, picking at random: %v", err)
		return 0, false
	}
	RecordLLMTokensEmbedding(ctx, vec.TotalTokens)

	query := common.ToFloat32(vec.Vector)
	best, bestScore, found := 0, -1.0, false
	for _, idx := range subset {
		score, ok := common.CosineSimilarity(query, corpus.Embeddings.Row(idx))
		if !ok {
			continue
		}
		if score > bestScore {
			best, bestScore, found = idx, score, true
		}
	}
	return best, found
}

// InitFallbackComment initializes the FallbackComment use case and registers it in the dependency container.
type InitFallbackComment struct {
	CorpusRepo        domain.CorpusRepository `resolve:""`
	Encoder           domain.SemanticEncoder  `resolve:""`
	Random            domain.RandomSource     `resolve:""`
	Logger            *log.Logger             `resolve:""`
	LLMEmbeddingModel string                  `config:"LLM_EMBEDDING_MODEL" default:"-"`
}

// Initialize registers the FallbackComment use case.
func (i InitFallbackComment) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[FallbackComment](NewFallbackCommentImpl(
		i.CorpusRepo,
		i.Encoder,
		i.Random,
		i.Logger,
		i.LLMEmbeddingModel,
	))
	return ctx, nil
}
