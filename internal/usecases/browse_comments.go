package usecases

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// DefaultBrowsePageSize is used when the caller sends no page size.
const DefaultBrowsePageSize = 10

// DatasetNotLoadedMessage is set on browse results when the corpus is unavailable.
const DatasetNotLoadedMessage = "Dataset not loaded"

// BrowseSort is the ordering of browse results.
type BrowseSort string

const (
	BrowseSort_Alphabetical BrowseSort = "alphabetical"
	BrowseSort_Random       BrowseSort = "random"
)

// BrowseParams are the browse filters. Style "all" or empty disables style filtering.
type BrowseParams struct {
	Language string
	Mood     string
	Style    string
	Page     int
	PageSize int
	Sort     BrowseSort
}

// BrowseResult is one page of matching comments.
type BrowseResult struct {
	Comments   []domain.CommentVariant
	Total      int
	Page       int
	TotalPages int
	Error      string
}

// BrowseComments is the use case interface for paging through the corpus.
type BrowseComments interface {
	Query(ctx context.Context, params BrowseParams) (BrowseResult, error)
}

// BrowseCommentsImpl is the implementation of the BrowseComments use case.
type BrowseCommentsImpl struct {
	corpusRepo domain.CorpusRepository
	rnd        domain.RandomSource
	logger     *log.Logger
}

// NewBrowseCommentsImpl creates a new instance of BrowseCommentsImpl.
func NewBrowseCommentsImpl(cr domain.CorpusRepository, rnd domain.RandomSource, l *log.Logger) BrowseCommentsImpl {
	return BrowseCommentsImpl{corpusRepo: cr, rnd: rnd, logger: l}
}

// Query filters, sorts and paginates the corpus. The page is clamped to [1, TotalPages].
func (bc BrowseCommentsImpl) Query(ctx context.Context, params BrowseParams) (BrowseResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = DefaultBrowsePageSize
	}

	corpus, err := bc.corpusRepo.Corpus(spanCtx)
	if err != nil {
		var dataErr *domain.DataUnavailableErr
		if !errors.As(err, &dataErr) {
			telemetry.RecordErrorAndStatus(span, err)
			return BrowseResult{}, err
		}
		bc.logger.Printf("BrowseComments: %v", err)
		return BrowseResult{
			Comments: []domain.CommentVariant{},
			Page:     params.Page,
			Error:    DatasetNotLoadedMessage,
		}, nil
	}

	indices := corpus.Select(domain.NewLanguage(params.Language), domain.Mood(params.Mood), params.Style)
	total := len(indices)
	if total == 0 {
		return BrowseResult{Comments: []domain.CommentVariant{}, Page: params.Page}, nil
	}

	switch params.Sort {
	case BrowseSort_Alphabetical:
		slices.SortStableFunc(indices, func(a, b int) int {
			return strings.Compare(corpus.Records[a].Text, corpus.Records[b].Text)
		})
	case BrowseSort_Random:
		indices = domain.SampleFrom(bc.rnd, indices, total)
	}

	totalPages := (total + pageSize - 1) / pageSize
	page := max(1, min(params.Page, totalPages))
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	comments := make([]domain.CommentVariant, 0, end-start)
	for _, idx := range indices[start:end] {
		record := corpus.Records[idx]
		comments = append(comments, domain.CommentVariant{
			Comment: record.Text,
			Mood:    record.Mood,
			Style:   record.Style,
		})
	}

	return BrowseResult{
		Comments:   comments,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// InitBrowseComments initializes the BrowseComments use case and registers it in the dependency container.
type InitBrowseComments struct {
	CorpusRepo domain.CorpusRepository `resolve:""`
	Random     domain.RandomSource     `resolve:""`
	Logger     *log.Logger             `resolve:""`
}

// Initialize registers the BrowseComments use case.
func (i InitBrowseComments) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[BrowseComments](NewBrowseCommentsImpl(i.CorpusRepo, i.Random, i.Logger))
	return ctx, nil
}
