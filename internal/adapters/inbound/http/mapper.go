package http

import (
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/usecases"
)

// GenerationFailedMessage is returned when the upstream generator fails.
const GenerationFailedMessage = "Failed to generate comment"

func toError(err error) ErrorResp {
	var (
		validationErr *domain.ValidationErr
		quotaErr      *domain.QuotaExceededErr
		upstreamErr   *domain.GenerationUpstreamErr
	)
	switch {
	case errors.As(err, &validationErr):
		return ErrorResp{Error: validationErr.Error(), statusCode: http.StatusBadRequest}
	case errors.As(err, &quotaErr):
		return ErrorResp{Error: quotaErr.Error(), statusCode: http.StatusTooManyRequests}
	case errors.As(err, &upstreamErr):
		return ErrorResp{Error: GenerationFailedMessage, statusCode: http.StatusBadGateway}
	default:
		return ErrorResp{Error: "internal server error", statusCode: http.StatusInternalServerError}
	}
}

func toSearchResponse(result usecases.SearchResult) SearchResponse {
	resp := SearchResponse{
		Source:        SourceSmartSearch,
		Status:        string(result.Status),
		DatasetLoaded: result.DatasetLoaded,
		Language:      string(result.Language),
		Mood:          string(result.Mood),
	}
	if result.Message != "" {
		resp.Results = []string{result.Message}
		return resp
	}
	results := result.Results
	if results == nil {
		results = []domain.CommentVariant{}
	}
	resp.Results = results
	return resp
}

func toBrowseResponse(result usecases.BrowseResult) BrowseResponse {
	comments := result.Comments
	if comments == nil {
		comments = []domain.CommentVariant{}
	}
	return BrowseResponse{
		Comments:   comments,
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
		Error:      result.Error,
	}
}

func toUsageResponse(stats domain.UsageStats) UsageResponse {
	return UsageResponse{
		Used:      stats.Used,
		Remaining: stats.Remaining,
		Total:     stats.Limit,
		Date:      stats.Date,
	}
}
