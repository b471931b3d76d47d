// Package modelrunner talks to OpenAI-compatible model endpoints: a local model
// runner for query embeddings and a hosted chat-completions API for comment generation.
package modelrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
)

// disabled is the config sentinel for an optional value that is not set.
const disabled = "-"

// configured reports whether an optional config value carries a real value.
func configured(v string) bool {
	return v != "" && v != disabled
}

// DRMAPIClient is a thin client for an OpenAI-compatible API.
type DRMAPIClient struct {
	baseURL  string
	apiKey   string
	chatPath string
	http     *http.Client
}

// DefaultChatPath is the chat completions path of the Docker model runner.
const DefaultChatPath = "/v1/chat/completions"

// NewDRMAPIClient creates a new client. An empty or "-" apiKey sends no Authorization header.
func NewDRMAPIClient(baseURL string, apiKey string, httpClient *http.Client) DRMAPIClient {
	if !configured(apiKey) {
		apiKey = ""
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return DRMAPIClient{
		baseURL:  baseURL,
		apiKey:   apiKey,
		chatPath: DefaultChatPath,
		http:     httpClient,
	}
}

// WithChatPath returns a copy of the client that posts chat requests to path,
// e.g. "/chat/completions" for hosts whose base URL already carries the version.
func (c DRMAPIClient) WithChatPath(path string) DRMAPIClient {
	if path != "" {
		c.chatPath = path
	}
	return c
}

// Configured reports whether the client has a base URL to talk to.
func (c DRMAPIClient) Configured() bool {
	return configured(c.baseURL)
}

// Chat sends a non-streaming chat completions request.
func (c DRMAPIClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}

	var out ChatResponse
	if err := c.post(ctx, c.chatPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Embeddings calls the /engines/v1/embeddings endpoint.
func (c DRMAPIClient) Embeddings(ctx context.Context, req EmbeddingsRequest) (*EmbeddingsResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}

	var out EmbeddingsResponse
	if err := c.post(ctx, "/engines/v1/embeddings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c DRMAPIClient) post(ctx context.Context, path string, body, out any) error {
	httpReq, err := c.newPostRequest(ctx, path, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c DRMAPIClient) newPostRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	if !c.Configured() {
		return nil, errors.New("model host is not configured")
	}
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx response: %s: %s", e.Status, e.Body)
}
