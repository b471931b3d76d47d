package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/usecases"
	"github.com/google/uuid"
	"github.com/rs/cors"
)

// RequestIDHeader carries the request identifier echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// CommentAppServer is the REST API HTTP server for the comment recommender.
type CommentAppServer struct {
	Port                   int                      `config:"HTTP_PORT" default:"8080"`
	Logger                 *log.Logger              `resolve:""`
	SearchCommentsUseCase  usecases.SearchComments  `resolve:""`
	GenerateCommentUseCase usecases.GenerateComment `resolve:""`
	FallbackCommentUseCase usecases.FallbackComment `resolve:""`
	BrowseCommentsUseCase  usecases.BrowseComments  `resolve:""`
	ListStylesUseCase      usecases.ListStyles      `resolve:""`
	GetUsageStatsUseCase   usecases.GetUsageStats   `resolve:""`
}

// Handler builds the routed handler with telemetry and CORS applied.
func (api CommentAppServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/search", api.SearchComments)
	mux.HandleFunc("POST /api/generate", api.GenerateComment)
	mux.HandleFunc("POST /api/fallback", api.FallbackComment)
	mux.HandleFunc("POST /api/browse", api.BrowseComments)
	mux.HandleFunc("GET /api/styles", api.ListStyles)
	mux.HandleFunc("GET /api/usage", api.GetUsageStats)
	mux.HandleFunc("GET /healthz", healthz)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	h := telemetry.Middleware("commentapp-api")(withRequestID(mux))

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the CommentAppServer.
func (api CommentAppServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("CommentAppServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("CommentAppServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("CommentAppServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the CommentAppServer is ready by performing a health check.
func (api CommentAppServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withRequestID keeps the caller's request ID or assigns a new UUID.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
