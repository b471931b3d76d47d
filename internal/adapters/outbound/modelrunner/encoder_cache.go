package modelrunner

import (
	"context"
	"slices"
	"time"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedEncoder memoizes query vectors in an expiring LRU.
type CachedEncoder struct {
	next  domain.SemanticEncoder
	cache *expirable.LRU[string, []float64]
}

// NewCachedEncoder wraps next with a cache. A non-positive size or ttl disables caching.
func NewCachedEncoder(next domain.SemanticEncoder, size int, ttl time.Duration) domain.SemanticEncoder {
	if next == nil || size <= 0 || ttl <= 0 {
		return next
	}
	return &CachedEncoder{
		next:  next,
		cache: expirable.NewLRU[string, []float64](size, nil, ttl),
	}
}

// Availability delegates to the wrapped encoder.
func (c *CachedEncoder) Availability() domain.EncoderAvailability {
	return c.next.Availability()
}

// VectorizeQuery returns a cached vector when present. Cache hits report zero tokens.
func (c *CachedEncoder) VectorizeQuery(ctx context.Context, model, query string) (domain.EmbeddingVector, error) {
	key := model + "\x00" + query
	if cached, ok := c.cache.Get(key); ok {
		return domain.EmbeddingVector{Vector: slices.Clone(cached)}, nil
	}
	vec, err := c.next.VectorizeQuery(ctx, model, query)
	if err != nil {
		return domain.EmbeddingVector{}, err
	}
	c.cache.Add(key, slices.Clone(vec.Vector))
	return vec, nil
}

// Len returns the number of cached vectors.
func (c *CachedEncoder) Len() int {
	return c.cache.Len()
}
