package usecases

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListStyles is the use case interface for listing the corpus styles.
type ListStyles interface {
	Query(ctx context.Context) ([]string, error)
}

// ListStylesImpl is the implementation of the ListStyles use case.
type ListStylesImpl struct {
	corpusRepo domain.CorpusRepository
}

// NewListStylesImpl creates a new instance of ListStylesImpl.
func NewListStylesImpl(cr domain.CorpusRepository) ListStylesImpl {
	return ListStylesImpl{corpusRepo: cr}
}

// Query returns the sorted distinct styles, or an empty list when the corpus is unavailable.
func (ls ListStylesImpl) Query(ctx context.Context) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	corpus, err := ls.corpusRepo.Corpus(spanCtx)
	if err != nil {
		var dataErr *domain.DataUnavailableErr
		if errors.As(err, &dataErr) {
			return []string{}, nil
		}
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	return corpus.Styles(), nil
}

// InitListStyles initializes the ListStyles use case and registers it in the dependency container.
type InitListStyles struct {
	CorpusRepo domain.CorpusRepository `resolve:""`
}

// Initialize registers the ListStyles use case.
func (i InitListStyles) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListStyles](NewListStylesImpl(i.CorpusRepo))
	return ctx, nil
}
