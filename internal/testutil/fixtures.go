package testutil

import "github.com/mselser95/profitrade/pkg/types"

// DefaultPrices returns the price fixtures served by MockCoinGeckoAPI.
func DefaultPrices() map[string]types.PriceSnapshot {
	return map[string]types.PriceSnapshot{
		"bitcoin":                 {USD: 45000, USD24hChange: 3.2, USDMarketCap: 880.12e9},
		"ethereum":                {USD: 2450.5, USD24hChange: -1.5, USDMarketCap: 294.6e9},
		"solana":                  {USD: 98.76, USD24hChange: 5.01, USDMarketCap: 42.3e9},
		"cardano":                 {USD: 0.512345, USD24hChange: -0.25, USDMarketCap: 17.9e9},
		"polygon-ecosystem-token": {USD: 0.000845, USD24hChange: 0, USDMarketCap: 7.1e9},
	}
}

// GlobalFixture is a trimmed CoinGecko /global response.
const GlobalFixture = `{
  "data": {
    "active_cryptocurrencies": 13690,
    "markets": 1046,
    "total_market_cap": {"usd": 2350000000000, "btc": 52222222},
    "total_volume": {"usd": 98500000000},
    "market_cap_percentage": {"btc": 51.23, "eth": 16.8},
    "market_cap_change_percentage_24h_usd": 1.75,
    "updated_at": 1712345678
  }
}`

// TrendingFixture is a trimmed CoinGecko /search/trending response.
// The third coin has no market cap rank.
const TrendingFixture = `{
  "coins": [
    {"item": {"id": "pepe", "name": "Pepe", "symbol": "PEPE", "market_cap_rank": 24, "score": 0}},
    {"item": {"id": "render-token", "name": "Render", "symbol": "RNDR", "market_cap_rank": 35, "score": 1}},
    {"item": {"id": "newcoin", "name": "NewCoin", "symbol": "NEW", "market_cap_rank": null, "score": 2}}
  ]
}`

// BitcoinDetailFixture is a trimmed CoinGecko /coins/bitcoin response.
const BitcoinDetailFixture = `{
  "id": "bitcoin",
  "symbol": "btc",
  "name": "Bitcoin",
  "market_cap_rank": 1,
  "market_data": {
    "current_price": {"usd": 45000},
    "ath": {"usd": 73738},
    "market_cap": {"usd": 880120000000},
    "total_volume": {"usd": 31000000000},
    "price_change_percentage_24h": 3.2
  }
}`

// EthereumDetailFixture is a trimmed CoinGecko /coins/ethereum response.
const EthereumDetailFixture = `{
  "id": "ethereum",
  "symbol": "eth",
  "name": "Ethereum",
  "market_cap_rank": 2,
  "market_data": {
    "current_price": {"usd": 2450.5},
    "ath": {"usd": 4878.26},
    "market_cap": {"usd": 294600000000},
    "total_volume": {"usd": 15000000000},
    "price_change_percentage_24h": -1.5
  }
}`
