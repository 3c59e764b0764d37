package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/mselser95/profitrade/pkg/types"
)

// MockCoinGeckoAPI is a mock HTTP server that simulates the CoinGecko v3 API.
// It counts requests per path so tests can assert how often the upstream
// was actually hit.
type MockCoinGeckoAPI struct {
	*httptest.Server

	mu       sync.RWMutex
	prices   map[string]types.PriceSnapshot
	global   string
	trending string
	coins    map[string]string
	raw      map[string]string // path -> body overrides
	status   int
	calls    map[string]int
	apiKeys  []string
}

// NewMockCoinGeckoAPI creates a mock API serving the default fixtures.
func NewMockCoinGeckoAPI() *MockCoinGeckoAPI {
	mock := &MockCoinGeckoAPI{
		prices:   DefaultPrices(),
		global:   GlobalFixture,
		trending: TrendingFixture,
		coins: map[string]string{
			"bitcoin":  BitcoinDetailFixture,
			"ethereum": EthereumDetailFixture,
		},
		raw:    make(map[string]string),
		status: http.StatusOK,
		calls:  make(map[string]int),
	}

	mock.Server = httptest.NewServer(http.HandlerFunc(mock.handle))
	return mock
}

func (m *MockCoinGeckoAPI) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls[r.URL.Path]++
	m.apiKeys = append(m.apiKeys, r.Header.Get("x-cg-demo-api-key"))

	if m.status != http.StatusOK {
		http.Error(w, `{"status":{"error_code":429,"error_message":"rate limited"}}`, m.status)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if raw, ok := m.raw[r.URL.Path]; ok {
		_, _ = w.Write([]byte(raw))
		return
	}

	switch {
	case r.URL.Path == "/simple/price":
		result := make(map[string]types.PriceSnapshot)
		for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
			if snap, ok := m.prices[id]; ok {
				result[id] = snap
			}
		}
		_ = json.NewEncoder(w).Encode(result)
	case r.URL.Path == "/global":
		_, _ = w.Write([]byte(m.global))
	case r.URL.Path == "/search/trending":
		_, _ = w.Write([]byte(m.trending))
	case strings.HasPrefix(r.URL.Path, "/coins/"):
		body, ok := m.coins[strings.TrimPrefix(r.URL.Path, "/coins/")]
		if !ok {
			http.Error(w, `{"error":"coin not found"}`, http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	default:
		http.NotFound(w, r)
	}
}

// SetStatus makes every subsequent response use the given status code.
func (m *MockCoinGeckoAPI) SetStatus(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = status
}

// SetRawBody serves body verbatim for path, bypassing the fixtures.
func (m *MockCoinGeckoAPI) SetRawBody(path string, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw[path] = body
}

// SetPrice replaces the price fixture for one asset id.
func (m *MockCoinGeckoAPI) SetPrice(id string, snap types.PriceSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[id] = snap
}

// Calls returns how many requests hit path.
func (m *MockCoinGeckoAPI) Calls(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[path]
}

// TotalCalls returns the number of requests across all paths.
func (m *MockCoinGeckoAPI) TotalCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

// APIKeys returns the x-cg-demo-api-key header of every request received.
func (m *MockCoinGeckoAPI) APIKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]string, len(m.apiKeys))
	copy(result, m.apiKeys)
	return result
}

// FakeClock is a manually advanced clock.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock creates a clock frozen at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
