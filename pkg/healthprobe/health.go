package healthprobe

import (
	"net/http"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

// Status values reported by the probes.
const (
	StatusHealthy  = "healthy"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthChecker provides health and readiness checks.
type HealthChecker struct {
	startTime time.Time
	now       func() time.Time
	ready     atomic.Bool
}

// Option configures a HealthChecker.
type Option func(*HealthChecker)

// WithClock replaces time.Now. The start time is taken from the clock.
func WithClock(now func() time.Time) Option {
	return func(h *HealthChecker) {
		h.now = now
	}
}

// New creates a new HealthChecker. It starts not ready.
func New(opts ...Option) *HealthChecker {
	h := &HealthChecker{now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	h.startTime = h.now()

	return h
}

// SetReady marks the application as ready to serve traffic.
func (h *HealthChecker) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady reports the current readiness flag.
func (h *HealthChecker) IsReady() bool {
	return h.ready.Load()
}

// Uptime returns the time elapsed since New, truncated to whole seconds.
func (h *HealthChecker) Uptime() time.Duration {
	return h.now().Sub(h.startTime).Truncate(time.Second)
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
	Uptime    string `json:"uptime,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Health returns an HTTP handler for liveness checks.
// Always returns 200 OK if the application is running.
func (h *HealthChecker) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    StatusHealthy,
			Timestamp: h.now().UTC().Format(time.RFC3339),
			Uptime:    h.Uptime().String(),
		})
	}
}

// Ready returns an HTTP handler for readiness checks.
// Returns 200 OK if ready, 503 Service Unavailable if not.
func (h *HealthChecker) Ready() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if !h.ready.Load() {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusNotReady,
				Message: "application is starting or shutting down",
			})
			return
		}

		writeJSON(w, http.StatusOK, HealthResponse{
			Status: StatusReady,
			Uptime: h.Uptime().String(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, resp HealthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
