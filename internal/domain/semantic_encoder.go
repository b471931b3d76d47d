package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// EncoderAvailability reports whether the embedding backend can serve requests.
type EncoderAvailability struct {
	Available bool
	Reason    string
}

// EncoderAvailable is the availability of a healthy encoder.
var EncoderAvailable = EncoderAvailability{Available: true}

// EncoderUnavailable builds an availability value carrying the reason.
func EncoderUnavailable(reason string) EncoderAvailability {
	return EncoderAvailability{Available: false, Reason: reason}
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
type SemanticEncoder interface {
	// Availability reports whether VectorizeQuery can currently be used.
	Availability() EncoderAvailability
	// VectorizeQuery generates a semantic vector for one user query/search input.
	VectorizeQuery(ctx context.Context, model, query string) (EmbeddingVector, error)
}
