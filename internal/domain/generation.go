package domain

import "context"

// DefaultGenerationBatchSize is the number of variants requested per upstream call.
const DefaultGenerationBatchSize = 5

// GenerationKey identifies a queue of pre-generated variants.
// Context is kept verbatim, so near-duplicate contexts do not share a queue.
type GenerationKey struct {
	Mood     string
	Language string
	Context  string
}

// GenerationRequest is one batched request to the generation API.
type GenerationRequest struct {
	Mood      string
	Language  string
	Context   string
	BatchSize int
}

// GenerationBatch is the validated result of one upstream call.
type GenerationBatch struct {
	Variants []CommentVariant
	Usage    GenerationUsage
}

// GenerationUsage contains token usage reported by the generation API.
type GenerationUsage struct {
	PromptTokens     int
	CompletionTokens int
}

// CommentGenerator produces batches of comment variants from the external generation API.
type CommentGenerator interface {
	// GenerateBatch performs exactly one upstream call. Any failure, including an
	// unconfigured client or a payload that fails validation, is a *GenerationUpstreamErr.
	GenerateBatch(ctx context.Context, req GenerationRequest) (GenerationBatch, error)
}
