package http

import (
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/usecases"
)

// SearchComments handles POST /api/search.
func (api CommentAppServer) SearchComments(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := decodeRequest(r, &req, false); err != nil {
		respondError(w, toError(err))
		return
	}

	result, err := api.SearchCommentsUseCase.Query(r.Context(), usecases.SearchParams{
		Prompt:   req.Prompt,
		Mood:     domain.Mood(strings.TrimSpace(req.Mood)),
		Language: domain.NewLanguage(req.Language),
		TopK:     req.TopK,
	})
	if err != nil {
		api.Logger.Printf("CommentAppServer: search failed: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toSearchResponse(result))
}

// GenerateComment handles POST /api/generate.
func (api CommentAppServer) GenerateComment(w http.ResponseWriter, r *http.Request) {
	params, ok := api.decodeGenerateParams(w, r)
	if !ok {
		return
	}

	variant, err := api.GenerateCommentUseCase.Execute(r.Context(), params)
	if err != nil {
		api.Logger.Printf("CommentAppServer: generation failed: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, GenerateResponse{
		Comment: variant.Comment,
		Mood:    variant.Mood,
		Style:   variant.Style,
		Source:  SourceAI,
	})
}

// FallbackComment handles POST /api/fallback.
func (api CommentAppServer) FallbackComment(w http.ResponseWriter, r *http.Request) {
	params, ok := api.decodeGenerateParams(w, r)
	if !ok {
		return
	}

	result, err := api.FallbackCommentUseCase.Execute(r.Context(), params)
	if err != nil {
		api.Logger.Printf("CommentAppServer: fallback failed: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, FallbackResponse{
		Comment:       result.Comment,
		Source:        SourceDataset,
		Found:         result.Found,
		DatasetLoaded: result.DatasetLoaded,
	})
}

func (api CommentAppServer) decodeGenerateParams(w http.ResponseWriter, r *http.Request) (usecases.GenerateParams, bool) {
	var req GenerateRequest
	if err := decodeRequest(r, &req, true); err != nil {
		respondError(w, toError(err))
		return usecases.GenerateParams{}, false
	}
	if strings.TrimSpace(req.Mood) == "" {
		req.Mood = defaultGenerateMood
	}
	if strings.TrimSpace(req.Language) == "" {
		req.Language = defaultGenerateLanguage
	}
	return usecases.GenerateParams{
		Mood:     req.Mood,
		Language: req.Language,
		Context:  req.Context,
	}, true
}

// BrowseComments handles POST /api/browse.
func (api CommentAppServer) BrowseComments(w http.ResponseWriter, r *http.Request) {
	var req BrowseRequest
	if err := decodeRequest(r, &req, false); err != nil {
		respondError(w, toError(err))
		return
	}

	result, err := api.BrowseCommentsUseCase.Query(r.Context(), usecases.BrowseParams{
		Language: valueOr(req.Language, defaultBrowseLanguage),
		Mood:     valueOr(req.Mood, defaultBrowseMood),
		Style:    valueOr(req.Style, domain.StyleAll),
		Page:     valueOr(req.Page, 1),
		PageSize: valueOr(req.PageSize, usecases.DefaultBrowsePageSize),
		Sort:     usecases.BrowseSort(valueOr(req.Sort, defaultBrowseSort)),
	})
	if err != nil {
		api.Logger.Printf("CommentAppServer: browse failed: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toBrowseResponse(result))
}

// ListStyles handles GET /api/styles.
func (api CommentAppServer) ListStyles(w http.ResponseWriter, r *http.Request) {
	styles, err := api.ListStylesUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("CommentAppServer: list styles failed: %v", err)
		respondError(w, toError(err))
		return
	}
	if styles == nil {
		styles = []string{}
	}
	respondJSON(w, http.StatusOK, StylesResponse{Styles: styles})
}

// GetUsageStats handles GET /api/usage.
func (api CommentAppServer) GetUsageStats(w http.ResponseWriter, r *http.Request) {
	stats, err := api.GetUsageStatsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("CommentAppServer: usage stats failed: %v", err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toUsageResponse(stats))
}
