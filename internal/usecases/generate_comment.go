package usecases

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// GenerateParams identifies what to generate. Context is free text and is used verbatim.
type GenerateParams struct {
	Mood     string
	Language string
	Context  string
}

// GenerateComment is the use case interface for obtaining one generated comment.
type GenerateComment interface {
	Execute(ctx context.Context, params GenerateParams) (domain.CommentVariant, error)
}

// keyLock serializes callers of one generation key. waiters counts holders and
// pending callers so the lock can be dropped once nobody uses it.
type keyLock struct {
	sync.Mutex
	waiters int
}

// GenerateCommentImpl batches upstream generation calls and serves the surplus
// from a FIFO queue per key.
type GenerateCommentImpl struct {
	generator domain.CommentGenerator
	usage     *UsageTracker
	logger    *log.Logger
	batchSize int
	timeout   time.Duration

	mu     sync.Mutex
	locks  map[domain.GenerationKey]*keyLock
	queues map[domain.GenerationKey][]domain.CommentVariant
}

// NewGenerateCommentImpl creates a new instance of GenerateCommentImpl.
func NewGenerateCommentImpl(
	g domain.CommentGenerator,
	u *UsageTracker,
	l *log.Logger,
	batchSize int,
	timeout time.Duration,
) *GenerateCommentImpl {
	if batchSize <= 0 {
		batchSize = domain.DefaultGenerationBatchSize
	}
	return &GenerateCommentImpl{
		generator: g,
		usage:     u,
		logger:    l,
		batchSize: batchSize,
		timeout:   timeout,
		locks:     map[domain.GenerationKey]*keyLock{},
		queues:    map[domain.GenerationKey][]domain.CommentVariant{},
	}
}

// Execute returns the next queued variant for the key, or makes exactly one upstream
// batch call on a miss. A failed call leaves the counter and the queues untouched.
func (g *GenerateCommentImpl) Execute(ctx context.Context, params GenerateParams) (domain.CommentVariant, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	g.usage.RollOver(spanCtx)

	key := domain.GenerationKey(params)
	kl := g.lockKey(key)
	defer g.unlockKey(key, kl)

	if variant, ok := g.pop(key); ok {
		RecordGenerationCacheHit(spanCtx, params.Mood, params.Language)
		return variant, nil
	}

	err := g.usage.CheckQuota(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CommentVariant{}, err
	}

	variants, err := g.fetchBatch(spanCtx, params)
	if telemetry.RecordErrorAndStatus(span, err) {
		g.logger.Printf("GenerateComment: upstream generation failed for mood=%q language=%q: %v", params.Mood, params.Language, err)
		return domain.CommentVariant{}, err
	}

	g.usage.Increment(spanCtx)
	RecordGenerationUpstreamCall(spanCtx, params.Mood, params.Language)

	g.store(key, variants[1:])
	return variants[0], nil
}

// fetchBatch performs the single upstream call with the configured timeout.
func (g *GenerateCommentImpl) fetchBatch(ctx context.Context, params GenerateParams) ([]domain.CommentVariant, error) {
	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	batch, err := g.generator.GenerateBatch(callCtx, domain.GenerationRequest{
		Mood:      params.Mood,
		Language:  params.Language,
		Context:   params.Context,
		BatchSize: g.batchSize,
	})
	if err != nil {
		var upstreamErr *domain.GenerationUpstreamErr
		if errors.As(err, &upstreamErr) {
			return nil, err
		}
		return nil, domain.NewGenerationUpstreamErr("generation request failed", err)
	}
	if len(batch.Variants) == 0 {
		return nil, domain.NewGenerationUpstreamErr("generation returned no comments", nil)
	}

	RecordLLMTokensUsed(ctx, batch.Usage.PromptTokens, batch.Usage.CompletionTokens)

	variants := batch.Variants
	if len(variants) > g.batchSize {
		variants = variants[:g.batchSize]
	}
	return variants, nil
}

func (g *GenerateCommentImpl) lockKey(key domain.GenerationKey) *keyLock {
	g.mu.Lock()
	kl, ok := g.locks[key]
	if !ok {
		kl = &keyLock{}
		g.locks[key] = kl
	}
	kl.waiters++
	g.mu.Unlock()

	kl.Lock()
	return kl
}

func (g *GenerateCommentImpl) unlockKey(key domain.GenerationKey, kl *keyLock) {
	kl.Unlock()

	g.mu.Lock()
	kl.waiters--
	if kl.waiters == 0 {
		delete(g.locks, key)
	}
	g.mu.Unlock()
}

// pop removes the head of the key's queue, deleting the entry once drained.
func (g *GenerateCommentImpl) pop(key domain.GenerationKey) (domain.CommentVariant, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	queue := g.queues[key]
	if len(queue) == 0 {
		return domain.CommentVariant{}, false
	}
	head := queue[0]
	if len(queue) == 1 {
		delete(g.queues, key)
	} else {
		g.queues[key] = queue[1:]
	}
	return head, true
}

func (g *GenerateCommentImpl) store(key domain.GenerationKey, rest []domain.CommentVariant) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(rest) == 0 {
		delete(g.queues, key)
		return
	}
	g.queues[key] = append([]domain.CommentVariant(nil), rest...)
}

// QueueLen returns the number of cached variants for a key.
func (g *GenerateCommentImpl) QueueLen(key domain.GenerationKey) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.queues[key])
}

// InitGenerateComment initializes the GenerateComment use case and registers it in the dependency container.
type InitGenerateComment struct {
	Generator domain.CommentGenerator `resolve:""`
	Usage     *UsageTracker           `resolve:""`
	Logger    *log.Logger             `resolve:""`
	BatchSize int                     `config:"GENERATION_BATCH_SIZE" default:"5"`
	Timeout   time.Duration           `config:"GENERATION_TIMEOUT" default:"30s"`
}

// Initialize registers the GenerateComment use case.
func (i InitGenerateComment) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateComment](NewGenerateCommentImpl(i.Generator, i.Usage, i.Logger, i.BatchSize, i.Timeout))
	return ctx, nil
}
