package random

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// Source is a domain.RandomSource safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSource creates a Source. A zero seed draws from the runtime's random state.
func NewSource(seed uint64) *Source {
	if seed == 0 {
		return &Source{}
	}
	return &Source{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform value in [0, n).
func (s *Source) IntN(n int) int {
	if s.rnd == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// InitRandomSource registers the domain.RandomSource used for sampling.
type InitRandomSource struct {
	Seed int `config:"RANDOM_SEED" default:"0"`
}

// Initialize registers the Source in the dependency container.
func (i InitRandomSource) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.RandomSource](NewSource(uint64(i.Seed)))
	return ctx, nil
}
