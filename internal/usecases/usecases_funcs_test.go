package usecases

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow   = time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	fixedToday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	yesterday  = time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newRandom() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

// buildCorpus creates a corpus whose embedding rows are the given one-dimensional values.
func buildCorpus(t *testing.T, records []domain.CommentRecord, values []float32) *domain.Corpus {
	t.Helper()
	emb, err := domain.NewEmbeddingMatrix(len(values), 1, values)
	require.NoError(t, err)
	c, err := domain.NewCorpus(records, emb)
	require.NoError(t, err)
	return c
}

// happyEnglishCorpus has n english/happy records "c0".."cN-1" with embedding i,
// followed by three records of other languages and moods.
func happyEnglishCorpus(t *testing.T, n int) *domain.Corpus {
	t.Helper()
	records := make([]domain.CommentRecord, 0, n+3)
	values := make([]float32, 0, n+3)
	for i := range n {
		records = append(records, domain.CommentRecord{
			ID:       fmt.Sprint(i),
			Text:     fmt.Sprintf("c%d", i),
			Language: "english",
			Mood:     "happy",
			Style:    "Casual",
		})
		values = append(values, float32(i))
	}
	records = append(records,
		domain.CommentRecord{ID: "x1", Text: "other-1", Language: "bengali", Mood: "happy", Style: "Casual"},
		domain.CommentRecord{ID: "x2", Text: "other-2", Language: "english", Mood: "sad", Style: ""},
		domain.CommentRecord{ID: "x3", Text: "other-3", Language: "english", Mood: "romantic", Style: ""},
	)
	values = append(values, 0, 0, 0)
	return buildCorpus(t, records, values)
}

func variants(prefix string, n int) []domain.CommentVariant {
	out := make([]domain.CommentVariant, n)
	for i := range out {
		out[i] = domain.CommentVariant{
			Comment: fmt.Sprintf("%s-%d", prefix, i),
			Mood:    "happy",
			Style:   "Witty",
		}
	}
	return out
}
