package http

import "github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"

// Response sources reported to clients.
const (
	SourceSmartSearch = "Smart Search (Local)"
	SourceAI          = "AI"
	SourceDataset     = "Dataset"
)

// Request defaults applied when a field is omitted.
const (
	defaultGenerateMood     = "happy"
	defaultGenerateLanguage = "english"
	defaultBrowseLanguage   = "english"
	defaultBrowseMood       = "Romantic"
	defaultBrowseSort       = "random"
)

// ErrorResp is the error body returned by every endpoint.
type ErrorResp struct {
	Error      string `json:"error"`
	statusCode int
}

type SearchRequest struct {
	Prompt   string `json:"prompt" validate:"max=2000"`
	Mood     string `json:"mood"`
	Language string `json:"language"`
	TopK     int    `json:"top_k" validate:"gte=0,lte=50"`
}

// SearchResponse carries either ranked results or a single status message as
// a one-element list of strings.
type SearchResponse struct {
	Results       any    `json:"results"`
	Source        string `json:"source"`
	Status        string `json:"status"`
	DatasetLoaded bool   `json:"dataset_loaded"`
	Language      string `json:"language"`
	Mood          string `json:"mood"`
}

type GenerateRequest struct {
	Mood     string `json:"mood" validate:"max=64"`
	Language string `json:"language" validate:"max=64"`
	Context  string `json:"context" validate:"max=2000"`
}

type GenerateResponse struct {
	Comment string `json:"comment"`
	Mood    string `json:"mood"`
	Style   string `json:"style"`
	Source  string `json:"source"`
}

type FallbackResponse struct {
	Comment       string `json:"comment"`
	Source        string `json:"source"`
	Found         bool   `json:"found"`
	DatasetLoaded bool   `json:"dataset_loaded"`
}

type BrowseRequest struct {
	Language *string `json:"language"`
	Mood     *string `json:"mood"`
	Style    *string `json:"style"`
	Page     *int    `json:"page" validate:"omitnil,gte=1"`
	PageSize *int    `json:"page_size" validate:"omitnil,gte=1,lte=100"`
	Sort     *string `json:"sort" validate:"omitnil,oneof=random alphabetical"`
}

type BrowseResponse struct {
	Comments   []domain.CommentVariant `json:"comments"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"total_pages"`
	Error      string                  `json:"error,omitempty"`
}

type StylesResponse struct {
	Styles []string `json:"styles"`
}

type UsageResponse struct {
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
	Total     int    `json:"total"`
	Date      string `json:"date"`
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
