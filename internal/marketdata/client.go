package marketdata

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/mselser95/profitrade/pkg/cache"
	"github.com/mselser95/profitrade/pkg/types"
	"go.uber.org/zap"
)

const (
	// DefaultTTL is how long a fetched payload is served from cache.
	DefaultTTL = 5 * time.Minute

	// DefaultTimeout bounds a single upstream request.
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 8 << 20
)

// Failure reasons recorded in FetchErrorsTotal.
const (
	reasonTransport = "transport"
	reasonStatus    = "status"
	reasonRead      = "read"
	reasonJSON      = "json"
	reasonDecode    = "decode"
)

var errInvalidJSON = errors.New("response body is not valid JSON")

// Clock returns the current time. Tests inject a fake one.
type Clock func() time.Time

// Client is a fail-soft, caching client for the CoinGecko v3 API.
//
// Every successful payload is cached under a key derived from the request
// and served from the cache until the TTL elapses. Failures are logged and
// reported as an empty result; they are never returned to the caller and
// never cached.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      cache.Cache
	ttl        time.Duration
	clock      Clock
	logger     *zap.Logger
}

// Config holds client configuration.
type Config struct {
	BaseURL    string
	APIKey     string        // Optional, sent as x-cg-demo-api-key
	Timeout    time.Duration // Default: DefaultTimeout
	TTL        time.Duration // Default: DefaultTTL
	Cache      cache.Cache   // Nil disables caching
	Clock      Clock         // Default: time.Now
	HTTPClient *http.Client  // Overrides Timeout when set
	Logger     *zap.Logger
}

// NewClient creates a new CoinGecko client.
func NewClient(cfg *Config) *Client {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		cache:      cfg.Cache,
		ttl:        ttl,
		clock:      clock,
		logger:     logger,
	}
}

// TTL returns the cache window.
func (c *Client) TTL() time.Duration {
	return c.ttl
}

// Fetch returns the raw JSON payload for req, from cache when a fresh entry
// exists and from the API otherwise. ok is false when no data is available.
func (c *Client) Fetch(ctx context.Context, req Request) (payload []byte, ok bool) {
	key := req.CacheKey()
	kind := string(req.Kind)

	if c.cache != nil {
		cached, found := c.cache.Get(ctx, key)
		if found {
			e, err := decodeEntry(cached)
			if err == nil && e.validAt(c.clock(), c.ttl) {
				CacheHitsTotal.WithLabelValues(kind).Inc()
				c.logger.Debug("marketdata-cache-hit", zap.String("key", key))
				return bytes.Clone(e.Payload), true
			}
			if err != nil {
				c.logger.Warn("marketdata-cache-entry-corrupt", zap.String("key", key), zap.Error(err))
			}
		}
	}
	CacheMissesTotal.WithLabelValues(kind).Inc()

	payload, reason, err := c.get(ctx, req)
	if err != nil {
		FetchErrorsTotal.WithLabelValues(kind, reason).Inc()
		c.logger.Warn("marketdata-fetch-failed",
			zap.String("kind", kind),
			zap.String("key", key),
			zap.String("reason", reason),
			zap.Error(err))
		return nil, false
	}

	if c.cache != nil {
		e := entry{Payload: payload, FetchedAt: c.clock()}
		c.cache.Set(ctx, key, e.encode(), c.ttl)
	}

	return payload, true
}

// get performs exactly one GET for req and returns a validated JSON body.
func (c *Client) get(ctx context.Context, req Request) (body []byte, reason string, err error) {
	requestURL := c.baseURL + req.Path()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, reasonTransport, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "profitrade/1.0")
	if c.apiKey != "" {
		httpReq.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	c.logger.Debug("marketdata-fetching", zap.String("url", requestURL))

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	FetchDurationSeconds.WithLabelValues(string(req.Kind)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, reasonTransport, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, reasonStatus, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(snippet))
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, reasonRead, fmt.Errorf("read response body: %w", err)
	}

	if !json.Valid(body) {
		return nil, reasonJSON, errInvalidJSON
	}

	return body, "", nil
}

// decode fetches req and unmarshals it into out. It reports false when no
// payload is available or the payload does not match out's shape.
func (c *Client) decode(ctx context.Context, req Request, out any) bool {
	payload, ok := c.Fetch(ctx, req)
	if !ok {
		return false
	}

	err := json.Unmarshal(payload, out)
	if err != nil {
		FetchErrorsTotal.WithLabelValues(string(req.Kind), reasonDecode).Inc()
		c.logger.Warn("marketdata-decode-failed",
			zap.String("key", req.CacheKey()),
			zap.Error(err))
		return false
	}

	return true
}

// Prices returns spot prices keyed by asset id. The map is empty, never nil,
// when data is unavailable.
func (c *Client) Prices(ctx context.Context, ids ...string) map[string]types.PriceSnapshot {
	var resp types.PricesResponse
	if !c.decode(ctx, PricesRequest(ids...), &resp) || resp == nil {
		return map[string]types.PriceSnapshot{}
	}
	return resp
}

// GlobalMarket returns aggregate market statistics.
func (c *Client) GlobalMarket(ctx context.Context) (types.GlobalMarket, bool) {
	var resp types.GlobalResponse
	if !c.decode(ctx, GlobalRequest(), &resp) {
		return types.GlobalMarket{}, false
	}
	return resp.Data, !resp.Data.IsEmpty()
}

// Trending returns the trending coin list, empty when unavailable.
func (c *Client) Trending(ctx context.Context) []types.TrendingCoin {
	var resp types.TrendingResponse
	if !c.decode(ctx, TrendingRequest(), &resp) {
		return []types.TrendingCoin{}
	}

	coins := make([]types.TrendingCoin, 0, len(resp.Coins))
	for _, item := range resp.Coins {
		coins = append(coins, item.Item)
	}
	return coins
}

// CoinDetail returns detail for a single coin id.
func (c *Client) CoinDetail(ctx context.Context, id string) (types.CoinDetail, bool) {
	var resp types.CoinDetail
	if !c.decode(ctx, CoinRequest(id), &resp) {
		return types.CoinDetail{}, false
	}
	return resp, resp.ID != ""
}
