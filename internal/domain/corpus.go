package domain

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// EmbeddingMatrix is a dense row-major matrix of float32 embeddings.
type EmbeddingMatrix struct {
	Rows int
	Dim  int
	Data []float32
}

// NewEmbeddingMatrix validates the shape of data and returns the matrix.
func NewEmbeddingMatrix(rows, dim int, data []float32) (EmbeddingMatrix, error) {
	if rows < 0 || dim <= 0 {
		return EmbeddingMatrix{}, fmt.Errorf("invalid embedding shape %dx%d", rows, dim)
	}
	if len(data) != rows*dim {
		return EmbeddingMatrix{}, fmt.Errorf("embedding data has %d values, expected %d (%dx%d)", len(data), rows*dim, rows, dim)
	}
	return EmbeddingMatrix{Rows: rows, Dim: dim, Data: data}, nil
}

// Row returns row i without copying.
func (m EmbeddingMatrix) Row(i int) []float32 {
	return m.Data[i*m.Dim : (i+1)*m.Dim]
}

// Corpus is the immutable, load-once view of the comment records and their embeddings.
// Row i of Embeddings is the embedding of Records[i].
type Corpus struct {
	Records    []CommentRecord
	Embeddings EmbeddingMatrix
}

// NewCorpus builds a Corpus, rejecting a record/embedding row count mismatch.
func NewCorpus(records []CommentRecord, embeddings EmbeddingMatrix) (*Corpus, error) {
	if embeddings.Rows != len(records) {
		return nil, fmt.Errorf("corpus has %d records but embedding matrix has %d rows", len(records), embeddings.Rows)
	}
	return &Corpus{Records: records, Embeddings: embeddings}, nil
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.Records)
}

// Select returns the indices of records matching language and mood, and style
// unless style is empty or StyleAll. Matching is case-insensitive and the
// indices keep corpus order.
func (c *Corpus) Select(language Language, mood Mood, style string) []int {
	filterStyle := style != "" && !strings.EqualFold(style, StyleAll)

	indices := []int{}
	for i, r := range c.Records {
		if !strings.EqualFold(r.Language, string(language)) {
			continue
		}
		if !strings.EqualFold(r.Mood, string(mood)) {
			continue
		}
		if filterStyle && !strings.EqualFold(r.Style, style) {
			continue
		}
		indices = append(indices, i)
	}
	return indices
}

// Styles returns the sorted distinct non-empty styles in the corpus.
func (c *Corpus) Styles() []string {
	seen := map[string]struct{}{}
	styles := []string{}
	for _, r := range c.Records {
		style := strings.TrimSpace(r.Style)
		if style == "" {
			continue
		}
		if _, ok := seen[style]; ok {
			continue
		}
		seen[style] = struct{}{}
		styles = append(styles, style)
	}
	slices.Sort(styles)
	return styles
}

// CorpusRepository provides access to the loaded corpus.
type CorpusRepository interface {
	// Corpus returns the corpus, loading it on first use.
	// Returns a *DataUnavailableErr when the files are missing or unreadable.
	Corpus(ctx context.Context) (*Corpus, error)
}
