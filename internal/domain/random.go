package domain

// RandomSource is the source of randomness used for sampling.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// SampleIndices returns k distinct values from [0, n) chosen uniformly without
// replacement. k is clamped to n.
func SampleIndices(rnd RandomSource, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return []int{}
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	// partial Fisher-Yates: the first k slots end up holding the sample
	for i := range k {
		j := i + rnd.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// SampleFrom returns k distinct elements of items chosen uniformly without replacement.
func SampleFrom[T any](rnd RandomSource, items []T, k int) []T {
	picked := SampleIndices(rnd, len(items), k)
	out := make([]T, len(picked))
	for i, p := range picked {
		out[i] = items[p]
	}
	return out
}
