package http

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/usecases"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/usecases/mocks"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = log.New(io.Discard, "", 0)

func doRequest(t *testing.T, server CommentAppServer, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestCommentAppServer_SearchComments(t *testing.T) {
	variants := []domain.CommentVariant{
		{Comment: "You light up my world 😍", Mood: "Romantic", Style: "Poetic"},
	}

	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockSearchComments)
		expectedStatus int
		expectedBody   map[string]any
	}{
		"success": {
			requestBody: []byte(`{"prompt":"love this photo","mood":"Romantic","language":"English","top_k":1}`),
			setupMocks: func(m *mocks.MockSearchComments) {
				m.EXPECT().Query(mock.Anything, usecases.SearchParams{
					Prompt:   "love this photo",
					Mood:     "Romantic",
					Language: domain.Language_English,
					TopK:     1,
				}).Return(usecases.SearchResult{
					Results:       variants,
					Status:        usecases.SearchStatus_OK,
					DatasetLoaded: true,
					Language:      domain.Language_English,
					Mood:          "Romantic",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]any{
				"results": []any{
					map[string]any{"comment": "You light up my world 😍", "mood": "Romantic", "style": "Poetic"},
				},
				"source":         SourceSmartSearch,
				"status":         "ok",
				"dataset_loaded": true,
				"language":       "english",
				"mood":           "Romantic",
			},
		},
		"no-match-message-as-list": {
			requestBody: []byte(`{"prompt":"hello"}`),
			setupMocks: func(m *mocks.MockSearchComments) {
				m.EXPECT().Query(mock.Anything, usecases.SearchParams{Prompt: "hello"}).Return(usecases.SearchResult{
					Message:       "No matching english Sad comments found.",
					Status:        usecases.SearchStatus_NoMatch,
					DatasetLoaded: true,
					Language:      domain.Language_English,
					Mood:          "Sad",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]any{
				"results":        []any{"No matching english Sad comments found."},
				"source":         SourceSmartSearch,
				"status":         "no_match",
				"dataset_loaded": true,
				"language":       "english",
				"mood":           "Sad",
			},
		},
		"empty-body": {
			requestBody:    nil,
			setupMocks:     func(m *mocks.MockSearchComments) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"error": NoDataProvidedMessage},
		},
		"empty-object": {
			requestBody:    []byte(`{}`),
			setupMocks:     func(m *mocks.MockSearchComments) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"error": NoDataProvidedMessage},
		},
		"invalid-top-k": {
			requestBody:    []byte(`{"prompt":"hi","top_k":500}`),
			setupMocks:     func(m *mocks.MockSearchComments) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"error": "invalid request: TopK failed on lte"},
		},
		"internal-error": {
			requestBody: []byte(`{"prompt":"hi"}`),
			setupMocks: func(m *mocks.MockSearchComments) {
				m.EXPECT().Query(mock.Anything, mock.Anything).Return(usecases.SearchResult{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]any{"error": "internal server error"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := mocks.NewMockSearchComments(t)
			tt.setupMocks(m)

			server := CommentAppServer{SearchCommentsUseCase: m, Logger: discardLogger}
			w := doRequest(t, server, http.MethodPost, "/api/search", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, decodeBody[map[string]any](t, w))
		})
	}
}

func TestCommentAppServer_GenerateComment(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockGenerateComment)
		expectedStatus int
		expectedBody   map[string]any
	}{
		"success": {
			requestBody: []byte(`{"mood":"Sad","language":"bengali","context":"rainy day"}`),
			setupMocks: func(m *mocks.MockGenerateComment) {
				m.EXPECT().Execute(mock.Anything, usecases.GenerateParams{
					Mood: "Sad", Language: "bengali", Context: "rainy day",
				}).Return(domain.CommentVariant{Comment: "মন খারাপ", Mood: "Sad", Style: "Casual"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]any{
				"comment": "মন খারাপ", "mood": "Sad", "style": "Casual", "source": SourceAI,
			},
		},
		"defaults-applied-on-empty-body": {
			requestBody: nil,
			setupMocks: func(m *mocks.MockGenerateComment) {
				m.EXPECT().Execute(mock.Anything, usecases.GenerateParams{
					Mood: "happy", Language: "english",
				}).Return(domain.CommentVariant{Comment: "Great!", Mood: "happy", Style: "Casual"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]any{
				"comment": "Great!", "mood": "happy", "style": "Casual", "source": SourceAI,
			},
		},
		"upstream-failure": {
			requestBody: []byte(`{"mood":"Sad"}`),
			setupMocks: func(m *mocks.MockGenerateComment) {
				m.EXPECT().Execute(mock.Anything, mock.Anything).
					Return(domain.CommentVariant{}, domain.NewGenerationUpstreamErr("upstream call failed", errors.New("503")))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   map[string]any{"error": GenerationFailedMessage},
		},
		"quota-exceeded": {
			requestBody: []byte(`{"mood":"Sad"}`),
			setupMocks: func(m *mocks.MockGenerateComment) {
				m.EXPECT().Execute(mock.Anything, mock.Anything).
					Return(domain.CommentVariant{}, domain.NewQuotaExceededErr("daily generation limit reached"))
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   map[string]any{"error": "daily generation limit reached"},
		},
		"invalid-json": {
			requestBody:    []byte(`{"mood":`),
			setupMocks:     func(m *mocks.MockGenerateComment) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := mocks.NewMockGenerateComment(t)
			tt.setupMocks(m)

			server := CommentAppServer{GenerateCommentUseCase: m, Logger: discardLogger}
			w := doRequest(t, server, http.MethodPost, "/api/generate", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody[map[string]any](t, w)
			if tt.expectedBody != nil {
				assert.Equal(t, tt.expectedBody, body)
			} else {
				assert.Contains(t, body, "error")
			}
		})
	}
}

func TestCommentAppServer_FallbackComment(t *testing.T) {
	m := mocks.NewMockFallbackComment(t)
	m.EXPECT().Execute(mock.Anything, usecases.GenerateParams{
		Mood: "Romantic", Language: "english", Context: "sunset",
	}).Return(usecases.FallbackResult{Comment: "Golden hour suits you", Found: true, DatasetLoaded: true}, nil)

	server := CommentAppServer{FallbackCommentUseCase: m, Logger: discardLogger}
	w := doRequest(t, server, http.MethodPost, "/api/fallback", []byte(`{"mood":"Romantic","context":"sunset"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, FallbackResponse{
		Comment:       "Golden hour suits you",
		Source:        SourceDataset,
		Found:         true,
		DatasetLoaded: true,
	}, decodeBody[FallbackResponse](t, w))
}

func TestCommentAppServer_BrowseComments(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockBrowseComments)
		expectedStatus int
		expectedBody   *BrowseResponse
	}{
		"defaults": {
			requestBody: []byte(`{"page":2}`),
			setupMocks: func(m *mocks.MockBrowseComments) {
				m.EXPECT().Query(mock.Anything, usecases.BrowseParams{
					Language: "english",
					Mood:     "Romantic",
					Style:    domain.StyleAll,
					Page:     2,
					PageSize: usecases.DefaultBrowsePageSize,
					Sort:     usecases.BrowseSort_Random,
				}).Return(usecases.BrowseResult{
					Comments:   []domain.CommentVariant{{Comment: "a", Mood: "Romantic", Style: "Poetic"}},
					Total:      11,
					Page:       2,
					TotalPages: 2,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &BrowseResponse{
				Comments:   []domain.CommentVariant{{Comment: "a", Mood: "Romantic", Style: "Poetic"}},
				Total:      11,
				Page:       2,
				TotalPages: 2,
			},
		},
		"explicit-filters": {
			requestBody: []byte(`{"language":"bengali","mood":"Sad","style":"Poetic","page":1,"page_size":5,"sort":"alphabetical"}`),
			setupMocks: func(m *mocks.MockBrowseComments) {
				m.EXPECT().Query(mock.Anything, usecases.BrowseParams{
					Language: "bengali",
					Mood:     "Sad",
					Style:    "Poetic",
					Page:     1,
					PageSize: 5,
					Sort:     usecases.BrowseSort_Alphabetical,
				}).Return(usecases.BrowseResult{Page: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &BrowseResponse{Comments: []domain.CommentVariant{}, Page: 1},
		},
		"dataset-not-loaded": {
			requestBody: []byte(`{"mood":"Sad"}`),
			setupMocks: func(m *mocks.MockBrowseComments) {
				m.EXPECT().Query(mock.Anything, mock.Anything).Return(usecases.BrowseResult{
					Comments: []domain.CommentVariant{},
					Page:     1,
					Error:    usecases.DatasetNotLoadedMessage,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &BrowseResponse{
				Comments: []domain.CommentVariant{},
				Page:     1,
				Error:    usecases.DatasetNotLoadedMessage,
			},
		},
		"invalid-sort": {
			requestBody:    []byte(`{"sort":"newest"}`),
			setupMocks:     func(m *mocks.MockBrowseComments) {},
			expectedStatus: http.StatusBadRequest,
		},
		"empty-body": {
			requestBody:    []byte(`  `),
			setupMocks:     func(m *mocks.MockBrowseComments) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := mocks.NewMockBrowseComments(t)
			tt.setupMocks(m)

			server := CommentAppServer{BrowseCommentsUseCase: m, Logger: discardLogger}
			w := doRequest(t, server, http.MethodPost, "/api/browse", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeBody[BrowseResponse](t, w))
			}
		})
	}
}

func TestCommentAppServer_ListStyles(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*mocks.MockListStyles)
		expectedStatus int
		expectedBody   string
	}{
		"success": {
			setupMocks: func(m *mocks.MockListStyles) {
				m.EXPECT().Query(mock.Anything).Return([]string{"Casual", "Poetic"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"styles":["Casual","Poetic"]}`,
		},
		"empty": {
			setupMocks: func(m *mocks.MockListStyles) {
				m.EXPECT().Query(mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"styles":[]}`,
		},
		"error": {
			setupMocks: func(m *mocks.MockListStyles) {
				m.EXPECT().Query(mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := mocks.NewMockListStyles(t)
			tt.setupMocks(m)

			server := CommentAppServer{ListStylesUseCase: m, Logger: discardLogger}
			w := doRequest(t, server, http.MethodGet, "/api/styles", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestCommentAppServer_GetUsageStats(t *testing.T) {
	m := mocks.NewMockGetUsageStats(t)
	m.EXPECT().Query(mock.Anything).Return(domain.UsageStats{
		Used: 3, Remaining: 17, Limit: 20, Date: "2026-03-10",
	}, nil)

	server := CommentAppServer{GetUsageStatsUseCase: m, Logger: discardLogger}
	w := doRequest(t, server, http.MethodGet, "/api/usage", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"used":3,"remaining":17,"total":20,"date":"2026-03-10"}`, w.Body.String())
}

func TestCommentAppServer_MethodNotAllowed(t *testing.T) {
	server := CommentAppServer{Logger: discardLogger}
	w := doRequest(t, server, http.MethodGet, "/api/search", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCommentAppServer_Healthz(t *testing.T) {
	server := CommentAppServer{Logger: discardLogger}
	w := doRequest(t, server, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestToError(t *testing.T) {
	tests := map[string]struct {
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		"validation": {
			err:            domain.NewValidationErr("bad"),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "bad",
		},
		"quota-exceeded": {
			err:            domain.NewQuotaExceededErr("daily limit reached"),
			expectedStatus: http.StatusTooManyRequests,
			expectedMsg:    "daily limit reached",
		},
		"wrapped-upstream": {
			err:            errors.Join(errors.New("ctx"), domain.NewGenerationUpstreamErr("x", nil)),
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    GenerationFailedMessage,
		},
		"unknown": {
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			resp := toError(tt.err)
			assert.Equal(t, tt.expectedStatus, resp.statusCode)
			assert.Equal(t, tt.expectedMsg, resp.Error)
		})
	}
}

func TestWithRequestID(t *testing.T) {
	tests := map[string]struct {
		incoming string
	}{
		"generated":  {},
		"propagated": {incoming: "req-123"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var seen string
			h := withRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r.Header.Get(RequestIDHeader)
			}))

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			assert.Equal(t, seen, got)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}
