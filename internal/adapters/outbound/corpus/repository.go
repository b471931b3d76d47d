package corpus

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// FileRepository loads the corpus records and embeddings from disk on first use.
// Concurrent first callers wait for a single load; a failed load is retried by the
// next call and nothing partial is ever published.
type FileRepository struct {
	corpusPath     string
	embeddingsPath string
	logger         *log.Logger

	mu     sync.Mutex
	loaded atomic.Pointer[domain.Corpus]
}

// NewFileRepository creates a new FileRepository.
func NewFileRepository(corpusPath, embeddingsPath string, logger *log.Logger) *FileRepository {
	return &FileRepository{
		corpusPath:     corpusPath,
		embeddingsPath: embeddingsPath,
		logger:         logger,
	}
}

// Corpus implements domain.CorpusRepository.
func (r *FileRepository) Corpus(ctx context.Context) (*domain.Corpus, error) {
	if c := r.loaded.Load(); c != nil {
		return c, nil
	}

	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if c := r.loaded.Load(); c != nil {
		return c, nil
	}

	c, err := r.load(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		r.logger.Printf("CorpusRepository: failed to load dataset: %v", err)
		return nil, domain.NewDataUnavailableErr("dataset not loaded", err)
	}

	r.loaded.Store(c)
	r.logger.Printf("CorpusRepository: loaded %d comments with %d-dimensional embeddings", c.Len(), c.Embeddings.Dim)
	return c, nil
}

// load reads the records and the embedding matrix concurrently.
func (r *FileRepository) load(ctx context.Context) (*domain.Corpus, error) {
	var (
		records    []domain.CommentRecord
		embeddings domain.EmbeddingMatrix
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = readRecords(r.corpusPath)
		return err
	})
	g.Go(func() error {
		var err error
		embeddings, err = readEmbeddings(r.embeddingsPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewCorpus(records, embeddings)
}

func readRecords(path string) ([]domain.CommentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var records []domain.CommentRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	return records, nil
}

// InitCorpusRepository initializes the corpus repository and registers it in the dependency container.
type InitCorpusRepository struct {
	Logger         *log.Logger `resolve:""`
	CorpusFile     string      `config:"CORPUS_FILE" default:"dataset/comments.json"`
	EmbeddingsFile string      `config:"EMBEDDINGS_FILE" default:"dataset/embeddings.npy"`
}

// Initialize registers the repository. Loading happens on first use.
func (i InitCorpusRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CorpusRepository](NewFileRepository(i.CorpusFile, i.EmbeddingsFile, i.Logger))
	return ctx, nil
}
