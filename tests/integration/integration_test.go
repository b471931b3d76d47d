//go:build integration

package integration

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/app"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:18080"

var modelHost *fakeModelHost

func TestMain(m *testing.M) {
	dataDir, err := os.MkdirTemp("", "commentapp-it")
	if err != nil {
		log.Fatalf("failed to create data dir: %v", err)
	}
	defer os.RemoveAll(dataDir) //nolint:errcheck

	corpusPath, embeddingsPath, err := writeCorpus(dataDir)
	if err != nil {
		log.Fatalf("failed to write corpus: %v", err)
	}

	modelHost = newFakeModelHost()
	defer modelHost.Close()

	commentApp := app.NewCommentApp(
		&initEnvVars{
			envVars: map[string]string{
				"HTTP_PORT":              "18080",
				"DOTENV_FILE":            dataDir + "/.env",
				"USAGE_STORE":            "postgres",
				"DB_USER":                dbUser,
				"DB_PASS":                dbPass,
				"DB_NAME":                dbName,
				"CORPUS_FILE":            corpusPath,
				"EMBEDDINGS_FILE":        embeddingsPath,
				"LLM_MODEL_HOST":         modelHost.URL,
				"LLM_EMBEDDING_MODEL":    "ai/embeddinggemma",
				"LLM_GENERATION_HOST":    modelHost.URL,
				"LLM_GENERATION_MODEL":   "gemini-2.5-flash",
				"GENERATION_DAILY_LIMIT": "20",
			},
		},
		&InitPostgresContainer{},
	)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := commentApp.RunAsync(cancelCtx)

	err = commentApp.WaitForReadiness(cancelCtx, 5*time.Minute)
	if err != nil {
		cancel()
		log.Fatalf("CommentApp failed to become ready: %v", err)
	}

	code := m.Run()

	cancel()

	select {
	case <-time.After(1 * time.Minute):
		log.Fatalf("CommentApp did not shut down in time")
	case err = <-shutdownCh:
		if err != nil {
			log.Fatalf("CommentApp shutdown with error: %v", err)
		} else {
			log.Printf("CommentApp shut down gracefully")
		}
	}

	os.Exit(code)
}

func post[T any](t *testing.T, path string, body any) (int, T) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, baseURL+path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return do[T](t, req)
}

func get[T any](t *testing.T, path string) (int, T) {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, baseURL+path, nil)
	require.NoError(t, err)
	return do[T](t, req)
}

func do[T any](t *testing.T, req *http.Request) (int, T) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return resp.StatusCode, v
}

type commentResp struct {
	Comment string `json:"comment"`
	Mood    string `json:"mood"`
	Style   string `json:"style"`
	Source  string `json:"source"`
}

func TestCommentApp_RestAPI(t *testing.T) {
	t.Run("search-ranks-romantic-english", func(t *testing.T) {
		status, resp := post[struct {
			Results       []commentResp `json:"results"`
			Source        string        `json:"source"`
			Status        string        `json:"status"`
			DatasetLoaded bool          `json:"dataset_loaded"`
		}](t, "/api/search", map[string]any{"prompt": "love this", "mood": "Romantic", "language": "english", "top_k": 2})

		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "ok", resp.Status)
		require.True(t, resp.DatasetLoaded)
		require.Len(t, resp.Results, 2)
		for _, r := range resp.Results {
			require.Equal(t, "Romantic", r.Mood)
		}
	})

	t.Run("search-no-match", func(t *testing.T) {
		status, resp := post[struct {
			Results []string `json:"results"`
			Status  string   `json:"status"`
		}](t, "/api/search", map[string]any{"prompt": "hi", "mood": "Devotional", "language": "english"})

		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "no_match", resp.Status)
		require.Equal(t, []string{"No matching english Devotional comments found."}, resp.Results)
	})

	t.Run("generate-serves-batch-from-cache", func(t *testing.T) {
		before := modelHost.chatCalls.Load()
		var comments []string
		for range 5 {
			status, resp := post[commentResp](t, "/api/generate", map[string]any{"mood": "Romantic", "language": "english"})
			require.Equal(t, http.StatusOK, status)
			require.Equal(t, "AI", resp.Source)
			comments = append(comments, resp.Comment)
		}
		require.Equal(t, before+1, modelHost.chatCalls.Load())
		require.Equal(t, []string{"Generated one", "Generated two", "Generated three", "Generated four", "Generated five"}, comments)
	})

	t.Run("usage-counts-upstream-calls", func(t *testing.T) {
		status, resp := get[struct {
			Used      int    `json:"used"`
			Remaining int    `json:"remaining"`
			Total     int    `json:"total"`
			Date      string `json:"date"`
		}](t, "/api/usage")

		require.Equal(t, http.StatusOK, status)
		require.Equal(t, int(modelHost.chatCalls.Load()), resp.Used)
		require.Equal(t, 20, resp.Total)
		require.Equal(t, resp.Total-resp.Used, resp.Remaining)
		require.NotEmpty(t, resp.Date)
	})

	t.Run("fallback-picks-from-dataset", func(t *testing.T) {
		status, resp := post[struct {
			Comment string `json:"comment"`
			Source  string `json:"source"`
			Found   bool   `json:"found"`
		}](t, "/api/fallback", map[string]any{"mood": "Sad", "language": "english"})

		require.Equal(t, http.StatusOK, status)
		require.True(t, resp.Found)
		require.Equal(t, "This hit me right in the heart", resp.Comment)
	})

	t.Run("browse-alphabetical", func(t *testing.T) {
		status, resp := post[struct {
			Comments []commentResp `json:"comments"`
			Total    int           `json:"total"`
		}](t, "/api/browse", map[string]any{"mood": "Romantic", "sort": "alphabetical"})

		require.Equal(t, http.StatusOK, status)
		require.Equal(t, 2, resp.Total)
		require.Equal(t, "Every frame of you feels like home", resp.Comments[0].Comment)
	})

	t.Run("styles", func(t *testing.T) {
		status, resp := get[struct {
			Styles []string `json:"styles"`
		}](t, "/api/styles")

		require.Equal(t, http.StatusOK, status)
		require.Equal(t, []string{"Casual", "Poetic"}, resp.Styles)
	})
}
