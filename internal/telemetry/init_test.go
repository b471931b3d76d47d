package telemetry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{
		Logger:          log.New(&strings.Builder{}, "", 0),
		TracesEndpoint:  "-",
		MetricsEndpoint: "-",
		ServiceName:     "commentapp",
	}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	init := InitHttpClient{Logger: log.New(&strings.Builder{}, "", 0), RetryMax: 2, Timeout: 5 * time.Second}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, client.Timeout)
}

func TestDontRetry500StatusPolicy(t *testing.T) {
	policy := dontRetry500StatusPolicy(retryablehttp.DefaultRetryPolicy)
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := map[string]struct {
		ctx         context.Context
		resp        *http.Response
		err         error
		expectRetry bool
	}{
		"internal-server-error": {
			ctx:  context.Background(),
			resp: &http.Response{StatusCode: http.StatusInternalServerError},
		},
		"unauthorized": {
			ctx:  context.Background(),
			resp: &http.Response{StatusCode: http.StatusUnauthorized},
		},
		"bad-gateway": {
			ctx:         context.Background(),
			resp:        &http.Response{StatusCode: http.StatusBadGateway},
			expectRetry: true,
		},
		"too-many-requests": {
			ctx:         context.Background(),
			resp:        &http.Response{StatusCode: http.StatusTooManyRequests},
			expectRetry: true,
		},
		"transport-error-without-response": {
			ctx:         context.Background(),
			err:         errors.New("connection reset"),
			expectRetry: true,
		},
		"context-canceled": {
			ctx:  canceled,
			resp: &http.Response{StatusCode: http.StatusBadGateway},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			retry, _ := policy(tt.ctx, tt.resp, tt.err)
			assert.Equal(t, tt.expectRetry, retry)
		})
	}
}
