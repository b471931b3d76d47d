package modelrunner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/common"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	// maxTokensPerComment bounds the completion budget of one variant.
	maxTokensPerComment   = 500
	generationTemperature = 1.0
	generationTopP        = 0.95
)

// CommentGenerator implements domain.CommentGenerator with one chat completion per batch.
type CommentGenerator struct {
	client   DRMAPIClient
	model    string
	limiter  *rate.Limiter
	validate *validator.Validate
	logger   *log.Logger
}

// NewCommentGenerator creates a CommentGenerator. rpm caps upstream calls per minute;
// a non-positive rpm disables throttling.
func NewCommentGenerator(client DRMAPIClient, model string, rpm int, logger *log.Logger) *CommentGenerator {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if rpm > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1)
	}
	return &CommentGenerator{
		client:   client,
		model:    model,
		limiter:  limiter,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// GenerateBatch asks the model for req.BatchSize variants in a single call.
func (g *CommentGenerator) GenerateBatch(ctx context.Context, req domain.GenerationRequest) (domain.GenerationBatch, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("mood", req.Mood),
		attribute.String("language", req.Language),
		attribute.Int("batch_size", req.BatchSize),
	))
	defer span.End()

	batch, err := g.generate(spanCtx, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		var upstreamErr *domain.GenerationUpstreamErr
		if !errors.As(err, &upstreamErr) {
			err = domain.NewGenerationUpstreamErr("generation request failed", err)
		}
		return domain.GenerationBatch{}, err
	}
	return batch, nil
}

func (g *CommentGenerator) generate(ctx context.Context, req domain.GenerationRequest) (domain.GenerationBatch, error) {
	if !g.client.Configured() || !configured(g.model) {
		return domain.GenerationBatch{}, domain.NewGenerationUpstreamErr("generation client not configured", nil)
	}
	if req.BatchSize <= 0 {
		req.BatchSize = domain.DefaultGenerationBatchSize
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return domain.GenerationBatch{}, fmt.Errorf("wait for rate limiter: %w", err)
	}

	messages, err := buildGenerationMessages(req)
	if err != nil {
		return domain.GenerationBatch{}, err
	}

	resp, err := g.client.Chat(ctx, ChatRequest{
		Model:          g.model,
		Messages:       messages,
		Temperature:    common.Ptr(generationTemperature),
		TopP:           common.Ptr(generationTopP),
		MaxTokens:      common.Ptr(maxTokensPerComment * req.BatchSize),
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return domain.GenerationBatch{}, err
	}
	if len(resp.Choices) == 0 {
		return domain.GenerationBatch{}, domain.NewGenerationUpstreamErr("no choices in response", nil)
	}

	variants, err := g.parseVariants(resp.Choices[0].Message.Content, req.Mood)
	if err != nil {
		return domain.GenerationBatch{}, domain.NewGenerationUpstreamErr("invalid generation payload", err)
	}

	batch := domain.GenerationBatch{Variants: variants}
	if resp.Usage != nil {
		batch.Usage = domain.GenerationUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
		}
	}
	return batch, nil
}

// generationPayload is the JSON contract the prompt asks for.
type generationPayload struct {
	Comments []domain.CommentVariant `json:"comments"`
}

// parseVariants decodes the model output. Both {"comments":[...]} and a bare array are
// accepted. Variants that fail validation are dropped; an empty result is an error.
func (g *CommentGenerator) parseVariants(content, requestedMood string) ([]domain.CommentVariant, error) {
	text := stripCodeFence(content)
	if text == "" {
		return nil, errors.New("empty response content")
	}

	var raw []domain.CommentVariant
	if strings.HasPrefix(text, "[") {
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			return nil, fmt.Errorf("decode comment array: %w", err)
		}
	} else {
		var payload generationPayload
		if err := json.Unmarshal([]byte(text), &payload); err != nil {
			return nil, fmt.Errorf("decode comment object: %w", err)
		}
		raw = payload.Comments
	}

	variants := make([]domain.CommentVariant, 0, len(raw))
	for i, v := range raw {
		v.Comment = strings.TrimSpace(v.Comment)
		v.Style = strings.TrimSpace(v.Style)
		v.Mood = strings.TrimSpace(v.Mood)
		if v.Mood == "" {
			v.Mood = requestedMood
		}
		if err := g.validate.Struct(v); err != nil {
			g.logger.Printf("CommentGenerator: dropping variant %d: %v", i, err)
			continue
		}
		variants = append(variants, v)
	}
	if len(variants) == 0 {
		return nil, errors.New("no valid comments in response")
	}
	return variants, nil
}

// stripCodeFence removes a surrounding ```json or ``` markdown fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "```json"):
		s = s[len("```json"):]
	case strings.HasPrefix(s, "```"):
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// InitCommentGenerator initializes the domain.CommentGenerator dependency.
type InitCommentGenerator struct {
	HttpClient *http.Client `resolve:""`
	Logger     *log.Logger  `resolve:""`
	ModelHost  string       `config:"LLM_GENERATION_HOST" default:"-"`
	APIKey     string       `config:"LLM_API_KEY" default:"-"`
	ChatPath   string       `config:"LLM_GENERATION_CHAT_PATH" default:"/v1/chat/completions"`
	Model      string       `config:"LLM_GENERATION_MODEL" default:"-"`
	RateRPM    int          `config:"GENERATION_RATE_LIMIT_RPM" default:"15"`
}

// Initialize registers the CommentGenerator in the dependency container.
func (i InitCommentGenerator) Initialize(ctx context.Context) (context.Context, error) {
	client := NewDRMAPIClient(i.ModelHost, i.APIKey, i.HttpClient).WithChatPath(i.ChatPath)
	if !client.Configured() || !configured(i.Model) {
		i.Logger.Println("InitCommentGenerator: generation is not configured, requests will fail")
	}
	depend.Register[domain.CommentGenerator](NewCommentGenerator(client, i.Model, i.RateRPM, i.Logger))
	return ctx, nil
}
