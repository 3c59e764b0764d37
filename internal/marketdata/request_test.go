package marketdata

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_CacheKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
		want string
	}{
		{name: "prices-sorted", req: PricesRequest("ethereum", "bitcoin"), want: "prices:bitcoin,ethereum"},
		{name: "prices-normalized", req: PricesRequest(" BTC ", "eth", "btc", ""), want: "prices:btc,eth"},
		{name: "prices-default", req: PricesRequest(), want: "prices:bitcoin,cardano,ethereum,polygon-ecosystem-token,solana"},
		{name: "global", req: GlobalRequest(), want: "global"},
		{name: "trending", req: TrendingRequest(), want: "trending"},
		{name: "coin", req: CoinRequest("Bitcoin"), want: "coin:bitcoin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.req.CacheKey())
		})
	}
}

func TestRequest_Path(t *testing.T) {
	t.Parallel()

	pricesURL, err := url.Parse(PricesRequest("ethereum", "bitcoin").Path())
	require.NoError(t, err)
	assert.Equal(t, "/simple/price", pricesURL.Path)
	assert.Equal(t, "bitcoin,ethereum", pricesURL.Query().Get("ids"))
	assert.Equal(t, "usd", pricesURL.Query().Get("vs_currencies"))
	assert.Equal(t, "true", pricesURL.Query().Get("include_24hr_change"))
	assert.Equal(t, "true", pricesURL.Query().Get("include_market_cap"))

	assert.Equal(t, "/global", GlobalRequest().Path())
	assert.Equal(t, "/search/trending", TrendingRequest().Path())

	coinURL, err := url.Parse(CoinRequest("bitcoin").Path())
	require.NoError(t, err)
	assert.Equal(t, "/coins/bitcoin", coinURL.Path)
	assert.Equal(t, "false", coinURL.Query().Get("tickers"))
}

func TestEntry_Encoding(t *testing.T) {
	t.Parallel()

	fetched := time.Date(2024, 3, 1, 12, 0, 0, 123, time.UTC)
	e := entry{Payload: []byte(`{"a": 1}`), FetchedAt: fetched}

	decoded, err := decodeEntry(e.encode())
	require.NoError(t, err)
	assert.Equal(t, e.Payload, decoded.Payload)
	assert.True(t, fetched.Equal(decoded.FetchedAt))

	_, err = decodeEntry([]byte{1, 2, 3})
	assert.ErrorIs(t, err, errShortEntry)
}

func TestEntry_ValidAt(t *testing.T) {
	t.Parallel()

	fetched := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e := entry{FetchedAt: fetched}

	assert.True(t, e.validAt(fetched, time.Minute))
	assert.True(t, e.validAt(fetched.Add(59*time.Second), time.Minute))
	assert.False(t, e.validAt(fetched.Add(time.Minute), time.Minute))
}
