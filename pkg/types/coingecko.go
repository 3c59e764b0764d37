package types

// PriceSnapshot is one asset's entry in a CoinGecko /simple/price response.
// Missing fields decode as zero.
type PriceSnapshot struct {
	USD          float64 `json:"usd"`
	USD24hChange float64 `json:"usd_24h_change"`
	USDMarketCap float64 `json:"usd_market_cap"`
}

// PricesResponse maps asset id (e.g. "bitcoin") to its price snapshot.
type PricesResponse map[string]PriceSnapshot

// CurrencyValues maps currency code (e.g. "usd", "btc") to a value.
type CurrencyValues map[string]float64

// GlobalResponse is the envelope returned by CoinGecko /global.
type GlobalResponse struct {
	Data GlobalMarket `json:"data"`
}

// GlobalMarket holds aggregate market statistics.
type GlobalMarket struct {
	ActiveCryptocurrencies          int            `json:"active_cryptocurrencies"`
	Markets                         int            `json:"markets"`
	TotalMarketCap                  CurrencyValues `json:"total_market_cap"`
	TotalVolume                     CurrencyValues `json:"total_volume"`
	MarketCapPercentage             CurrencyValues `json:"market_cap_percentage"`
	MarketCapChangePercentage24hUSD float64        `json:"market_cap_change_percentage_24h_usd"`
	UpdatedAt                       int64          `json:"updated_at"`
}

// IsEmpty reports whether no usable statistics were decoded.
func (g GlobalMarket) IsEmpty() bool {
	return g.TotalMarketCap["usd"] == 0 && g.ActiveCryptocurrencies == 0
}

// TrendingResponse is the envelope returned by CoinGecko /search/trending.
type TrendingResponse struct {
	Coins []TrendingItem `json:"coins"`
}

// TrendingItem wraps a trending coin.
type TrendingItem struct {
	Item TrendingCoin `json:"item"`
}

// TrendingCoin is one entry of the trending list.
type TrendingCoin struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	MarketCapRank *int    `json:"market_cap_rank"` // nil when CoinGecko has no rank
	Score         int     `json:"score"`
	PriceBTC      float64 `json:"price_btc"`
}

// CoinDetail is the subset of CoinGecko /coins/{id} used by the advisor.
type CoinDetail struct {
	ID            string         `json:"id"`
	Symbol        string         `json:"symbol"`
	Name          string         `json:"name"`
	MarketCapRank *int           `json:"market_cap_rank"`
	MarketData    CoinMarketData `json:"market_data"`
}

// CoinMarketData holds the market section of a coin detail response.
type CoinMarketData struct {
	CurrentPrice             CurrencyValues `json:"current_price"`
	ATH                      CurrencyValues `json:"ath"`
	MarketCap                CurrencyValues `json:"market_cap"`
	TotalVolume              CurrencyValues `json:"total_volume"`
	PriceChangePercentage24h float64        `json:"price_change_percentage_24h"`
}
