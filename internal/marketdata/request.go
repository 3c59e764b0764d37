package marketdata

import (
	"net/url"
	"slices"
	"strings"
)

// Kind identifies one of the upstream endpoints.
type Kind string

// Request kinds.
const (
	KindPrices   Kind = "prices"
	KindGlobal   Kind = "global"
	KindTrending Kind = "trending"
	KindCoin     Kind = "coin"
)

// DefaultSymbols is the asset set used when a price request names none.
//
//nolint:gochecknoglobals // read-only default
var DefaultSymbols = []string{"bitcoin", "ethereum", "solana", "cardano", "polygon-ecosystem-token"}

// Request describes one upstream query. Build it with the constructors below
// so that ids are normalized before the cache key is derived.
type Request struct {
	Kind Kind
	IDs  []string // prices
	ID   string   // coin
}

// PricesRequest asks for spot prices of the given asset ids.
// Ids are lower-cased, de-duplicated and sorted; empty means DefaultSymbols.
func PricesRequest(ids ...string) Request {
	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if id != "" {
			normalized = append(normalized, id)
		}
	}
	if len(normalized) == 0 {
		normalized = append(normalized, DefaultSymbols...)
	}

	slices.Sort(normalized)
	normalized = slices.Compact(normalized)

	return Request{Kind: KindPrices, IDs: normalized}
}

// GlobalRequest asks for aggregate market statistics.
func GlobalRequest() Request {
	return Request{Kind: KindGlobal}
}

// TrendingRequest asks for the trending search list.
func TrendingRequest() Request {
	return Request{Kind: KindTrending}
}

// CoinRequest asks for detail on a single coin.
func CoinRequest(id string) Request {
	return Request{Kind: KindCoin, ID: strings.ToLower(strings.TrimSpace(id))}
}

// CacheKey derives the cache key. Equal requests always map to the same key.
func (r Request) CacheKey() string {
	switch r.Kind {
	case KindPrices:
		return "prices:" + strings.Join(r.IDs, ",")
	case KindCoin:
		return "coin:" + r.ID
	default:
		return string(r.Kind)
	}
}

// Path returns the endpoint path and query relative to the API base URL.
func (r Request) Path() string {
	switch r.Kind {
	case KindPrices:
		params := url.Values{}
		params.Set("ids", strings.Join(r.IDs, ","))
		params.Set("vs_currencies", "usd")
		params.Set("include_24hr_change", "true")
		params.Set("include_market_cap", "true")
		return "/simple/price?" + params.Encode()
	case KindGlobal:
		return "/global"
	case KindTrending:
		return "/search/trending"
	case KindCoin:
		params := url.Values{}
		params.Set("localization", "false")
		params.Set("tickers", "false")
		params.Set("community_data", "false")
		params.Set("developer_data", "false")
		return "/coins/" + url.PathEscape(r.ID) + "?" + params.Encode()
	default:
		return ""
	}
}
