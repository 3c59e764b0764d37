package healthprobe

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *stepClock {
	return &stepClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) HealthResponse {
	t.Helper()

	var resp HealthResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

func TestNew(t *testing.T) {
	hc := New()

	require.NotNil(t, hc)
	assert.False(t, hc.IsReady(), "should not be ready by default")
	assert.WithinDuration(t, time.Now(), hc.startTime, time.Second)
}

func TestSetReady_Toggle(t *testing.T) {
	hc := New()

	hc.SetReady(true)
	assert.True(t, hc.IsReady())

	hc.SetReady(false)
	assert.False(t, hc.IsReady())

	hc.SetReady(true)
	assert.True(t, hc.IsReady())
}

func TestHealth_Handler(t *testing.T) {
	clock := newClock()
	hc := New(WithClock(clock.Now))
	clock.Advance(90 * time.Second)

	w := httptest.NewRecorder()
	hc.Health()(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decode(t, w)
	assert.Equal(t, StatusHealthy, resp.Status)
	assert.Equal(t, "2024-03-01T12:01:30Z", resp.Timestamp)
	assert.Equal(t, "1m30s", resp.Uptime)
}

func TestHealth_TimestampIsRFC3339(t *testing.T) {
	hc := New()

	w := httptest.NewRecorder()
	hc.Health()(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	resp := decode(t, w)
	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestHealth_AlwaysReturnsOK(t *testing.T) {
	hc := New()

	for _, ready := range []bool{false, true} {
		hc.SetReady(ready)

		w := httptest.NewRecorder()
		hc.Health()(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code, "ready=%v", ready)
	}
}

func TestReady_StateChanges(t *testing.T) {
	hc := New()
	handler := hc.Ready()

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode(t, w)
	assert.Equal(t, StatusNotReady, resp.Status)
	assert.NotEmpty(t, resp.Message)

	hc.SetReady(true)
	w = httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StatusReady, decode(t, w).Status)

	hc.SetReady(false)
	w = httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthChecker_ConcurrentAccess(t *testing.T) {
	hc := New()
	handler := hc.Ready()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := range 100 {
			hc.SetReady(i%2 == 0)
		}
	}()

	go func() {
		defer wg.Done()
		for range 100 {
			handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ready", nil))
		}
	}()

	wg.Wait()
}
