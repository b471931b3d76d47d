package domain

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/common"
)

// Neighbor is a corpus row and its squared L2 distance to a query vector.
type Neighbor struct {
	Index    int
	Distance float64
}

// NearestNeighbors runs an exact nearest-neighbor search restricted to the rows
// listed in subset and returns at most k neighbors ordered by ascending squared
// L2 distance. Equal distances keep subset order. Nothing is retained between calls.
func NearestNeighbors(query []float32, m EmbeddingMatrix, subset []int, k int) ([]Neighbor, error) {
	if k <= 0 || len(subset) == 0 {
		return []Neighbor{}, nil
	}
	if len(query) != m.Dim {
		return nil, fmt.Errorf("query has dimension %d, embeddings have %d", len(query), m.Dim)
	}

	neighbors := make([]Neighbor, 0, len(subset))
	for _, idx := range subset {
		if idx < 0 || idx >= m.Rows {
			return nil, fmt.Errorf("subset index %d out of range [0,%d)", idx, m.Rows)
		}
		dist, _ := common.SquaredEuclidean(query, m.Row(idx))
		neighbors = append(neighbors, Neighbor{Index: idx, Distance: dist})
	}

	slices.SortStableFunc(neighbors, func(a, b Neighbor) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	if k < len(neighbors) {
		neighbors = neighbors[:k]
	}
	return neighbors, nil
}
