package httpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/mselser95/profitrade/internal/advisor"
	"github.com/mselser95/profitrade/internal/format"
	"github.com/mselser95/profitrade/internal/marketdata"
	"github.com/mselser95/profitrade/internal/testutil"
	"github.com/mselser95/profitrade/pkg/healthprobe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

type recordingAsker struct {
	mu      sync.Mutex
	queries []string
	reply   string
}

func (a *recordingAsker) Ask(_ context.Context, query string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.queries = append(a.queries, query)
	return a.reply
}

// deadlineAsker records whether the request context carried a deadline.
type deadlineAsker struct {
	hasDeadline chan bool
}

func (a *deadlineAsker) Ask(ctx context.Context, _ string) string {
	_, ok := ctx.Deadline()
	a.hasDeadline <- ok
	return "ok"
}

func newTestRouter(t *testing.T, asker Asker) (http.Handler, *healthprobe.HealthChecker) {
	t.Helper()

	hc := healthprobe.New()
	return NewRouter(&Config{
		Port:          "0",
		Logger:        zaptest.NewLogger(t),
		HealthChecker: hc,
		Asker:         asker,
	}), hc
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNew(t *testing.T) {
	logger := zap.NewNop()
	hc := healthprobe.New()

	server := New(&Config{Port: "8080", Logger: logger, HealthChecker: hc})

	require.NotNil(t, server)
	require.NotNil(t, server.server)
	assert.Equal(t, ":8080", server.server.Addr)
	assert.Equal(t, logger, server.logger)
	assert.Equal(t, hc, server.healthChecker)
	assert.Equal(t, 15*time.Second, server.server.ReadTimeout)
	assert.Equal(t, 10*time.Second, server.server.ReadHeaderTimeout)
	assert.Equal(t, 60*time.Second, server.server.IdleTimeout)
}

func TestIndexPage(t *testing.T) {
	h, _ := newTestRouter(t, &recordingAsker{reply: "ok"})

	w := do(h, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "ProfiTrade")
	assert.Contains(t, w.Body.String(), "/static/scripts.js")
}

func TestStaticAssets(t *testing.T) {
	h, _ := newTestRouter(t, &recordingAsker{reply: "ok"})

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/static/scripts.js", "javascript", "/chat/ask"},
		{"/static/styles.css", "text/css", ".chat-container"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(h, http.MethodGet, tt.path, "")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), tt.contentType)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}

	t.Run("missing asset", func(t *testing.T) {
		w := do(h, http.MethodGet, "/static/nope.js", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestChatAsk(t *testing.T) {
	asker := &recordingAsker{reply: "📈 bitcoin is up"}
	h, _ := newTestRouter(t, asker)

	w := do(h, http.MethodPost, "/chat/ask", `{"query":"bitcoin price"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "📈 bitcoin is up", resp.Response)
	assert.Equal(t, []string{"bitcoin price"}, asker.queries)
}

func TestChatAsk_EmptyQueryIsWellFormed(t *testing.T) {
	asker := &recordingAsker{reply: "help"}
	h, _ := newTestRouter(t, asker)

	w := do(h, http.MethodPost, "/chat/ask", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{""}, asker.queries)
}

func TestChatAsk_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"wrong type", `{"query": 42}`},
		{"truncated", `{"query": "bit`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asker := &recordingAsker{reply: "unused"}
			h, _ := newTestRouter(t, asker)

			w := do(h, http.MethodPost, "/chat/ask", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Empty(t, asker.queries)
		})
	}
}

func TestChatAsk_MethodNotAllowed(t *testing.T) {
	h, _ := newTestRouter(t, &recordingAsker{reply: "ok"})

	w := do(h, http.MethodGet, "/chat/ask", "")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

// Upstream failure must still produce a 200 with placeholder text.
func TestChatAsk_UpstreamDown(t *testing.T) {
	api := testutil.NewMockCoinGeckoAPI()
	defer api.Close()
	api.SetStatus(http.StatusTooManyRequests)

	logger := zaptest.NewLogger(t)
	client := marketdata.NewClient(&marketdata.Config{
		BaseURL: api.URL,
		Logger:  logger,
	})
	adv := advisor.New(&advisor.Config{MarketData: client, Logger: logger})
	h, _ := newTestRouter(t, adv)

	w := do(h, http.MethodPost, "/chat/ask", `{"query":"What is the bitcoin price?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Response, format.Loading)
	assert.Equal(t, 1, api.TotalCalls())
}

func TestChatAsk_LiveData(t *testing.T) {
	api := testutil.NewMockCoinGeckoAPI()
	defer api.Close()

	client := marketdata.NewClient(&marketdata.Config{BaseURL: api.URL})
	adv := advisor.New(&advisor.Config{MarketData: client})
	h, _ := newTestRouter(t, adv)

	w := do(h, http.MethodPost, "/chat/ask", `{"query":"btc price"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Response, "$45,000.00")
}

func TestHealthEndpoint(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	w := do(h, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp healthprobe.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
	assert.NotEmpty(t, resp.Uptime)
}

func TestReadyEndpoint(t *testing.T) {
	h, hc := newTestRouter(t, nil)

	assert.Equal(t, http.StatusServiceUnavailable, do(h, http.MethodGet, "/ready", "").Code)

	hc.SetReady(true)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/ready", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	w := do(h, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.String())
}

func TestServer_RouteNotFound(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	w := do(h, http.MethodGet, "/nonexistent", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	server := New(&Config{
		Port:          "0",
		Logger:        zaptest.NewLogger(t),
		HealthChecker: healthprobe.New(),
		Asker:         &recordingAsker{reply: "ok"},
	})

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- server.Serve(l)
	}()

	url := "http://" + l.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:noctx // test helper
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after shutdown")
	}
}

func TestChatAsk_NoRouterDeadline(t *testing.T) {
	asker := &deadlineAsker{hasDeadline: make(chan bool, 1)}
	h, _ := newTestRouter(t, asker)

	w := do(h, http.MethodPost, "/chat/ask", `{"query":"bitcoin price"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, <-asker.hasDeadline, "chat answers are bounded by the market data client")
}
