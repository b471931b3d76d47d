package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                   = otel.Meter("usecases")
	LLMTokensUsed           metric.Int64Counter
	GenerationUpstreamCalls metric.Int64Counter
	GenerationCacheHits     metric.Int64Counter
	SearchRequests          metric.Int64Counter
	UsageRollovers          metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	GenerationUpstreamCalls, err = meter.Int64Counter(
		"comment_generation_upstream_calls_total",
		metric.WithDescription("Successful batched calls to the generation API"),
	)
	if err != nil {
		panic(err)
	}

	GenerationCacheHits, err = meter.Int64Counter(
		"comment_generation_cache_hits_total",
		metric.WithDescription("Generated comments served from the per-key queue"),
	)
	if err != nil {
		panic(err)
	}

	SearchRequests, err = meter.Int64Counter(
		"comment_search_requests_total",
		metric.WithDescription("Smart search requests by outcome"),
	)
	if err != nil {
		panic(err)
	}

	UsageRollovers, err = meter.Int64Counter(
		"comment_generation_usage_rollovers_total",
		metric.WithDescription("Daily usage counter resets"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordGenerationUpstreamCall records one successful upstream batch call.
func RecordGenerationUpstreamCall(ctx context.Context, mood, language string) {
	GenerationUpstreamCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mood", mood),
		attribute.String("language", language),
	))
}

// RecordGenerationCacheHit records a comment served from a queue.
func RecordGenerationCacheHit(ctx context.Context, mood, language string) {
	GenerationCacheHits.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mood", mood),
		attribute.String("language", language),
	))
}

// RecordSearchRequest records a search outcome.
func RecordSearchRequest(ctx context.Context, status SearchStatus) {
	SearchRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", string(status)),
	))
}

// RecordUsageRollover records a daily counter reset.
func RecordUsageRollover(ctx context.Context) {
	UsageRollovers.Add(ctx, 1)
}
