package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mselser95/profitrade/internal/format"
	"github.com/mselser95/profitrade/internal/marketdata"
	"github.com/mselser95/profitrade/pkg/types"
)

const (
	bitcoinID  = "bitcoin"
	ethereumID = "ethereum"

	maxTrending = 7
)

type coinLabel struct {
	name   string
	symbol string
	icon   string
}

//nolint:gochecknoglobals // read-only display names
var coinLabels = map[string]coinLabel{
	"bitcoin":                 {name: "Bitcoin", symbol: "BTC", icon: "₿"},
	"ethereum":                {name: "Ethereum", symbol: "ETH", icon: "🔷"},
	"solana":                  {name: "Solana", symbol: "SOL", icon: "🟣"},
	"cardano":                 {name: "Cardano", symbol: "ADA", icon: "🔵"},
	"polygon-ecosystem-token": {name: "Polygon", symbol: "POL", icon: "🟪"},
}

func labelFor(id string) coinLabel {
	l, ok := coinLabels[id]
	if !ok {
		return coinLabel{name: id, symbol: strings.ToUpper(id), icon: "🪙"}
	}
	return l
}

func (a *Advisor) priceResponse(ctx context.Context, q string) string {
	switch {
	case containsAny(bitcoinKeywords...)(q):
		return a.coinQuote(ctx, bitcoinID)
	case containsAny(ethereumKeywords...)(q):
		return a.coinQuote(ctx, ethereumID)
	default:
		return a.priceOverview(ctx)
	}
}

func (a *Advisor) coinQuote(ctx context.Context, id string) string {
	prices := a.data.Prices(ctx, id)
	price, change, mcap := quoteFields(prices, id)
	l := labelFor(id)

	return strings.NewReplacer(
		"{icon}", l.icon,
		"{name}", l.name,
		"{symbol}", l.symbol,
		"{price}", price,
		"{change}", change,
		"{cap}", mcap,
	).Replace(a.choose(coinQuoteTemplates))
}

// quoteFields renders a snapshot, falling back to placeholders when the id is
// absent from the response.
func quoteFields(prices map[string]types.PriceSnapshot, id string) (price, change, mcap string) {
	snap, ok := prices[id]
	if !ok {
		return format.Loading, format.Loading, format.NotApplicable
	}
	return format.FormatPrice(snap.USD), format.FormatPercentage(snap.USD24hChange), format.FormatLargeNumber(snap.USDMarketCap)
}

func (a *Advisor) priceOverview(ctx context.Context) string {
	prices := a.data.Prices(ctx, marketdata.DefaultSymbols...)

	var b strings.Builder
	b.WriteString(overviewHeader)
	for _, id := range marketdata.DefaultSymbols {
		l := labelFor(id)
		price, change, _ := quoteFields(prices, id)
		fmt.Fprintf(&b, "\n%s **%s (%s):** %s %s", l.icon, l.name, l.symbol, price, change)
	}

	return b.String()
}

func (a *Advisor) marketResponse(ctx context.Context, _ string) string {
	g, ok := a.data.GlobalMarket(ctx)
	if !ok {
		return strings.NewReplacer(
			"{cap}", format.Loading,
			"{change}", format.Loading,
			"{volume}", format.Loading,
			"{btc}", format.Loading,
			"{eth}", format.Loading,
			"{active}", format.Loading,
		).Replace(marketTemplate)
	}

	return strings.NewReplacer(
		"{cap}", format.FormatLargeNumber(g.TotalMarketCap["usd"]),
		"{change}", format.FormatPercentage(g.MarketCapChangePercentage24hUSD),
		"{volume}", format.FormatLargeNumber(g.TotalVolume["usd"]),
		"{btc}", fmt.Sprintf("%.2f%%", g.MarketCapPercentage["btc"]),
		"{eth}", fmt.Sprintf("%.2f%%", g.MarketCapPercentage["eth"]),
		"{active}", humanize.Comma(int64(g.ActiveCryptocurrencies)),
	).Replace(marketTemplate)
}

func (a *Advisor) trendingResponse(ctx context.Context, _ string) string {
	coins := a.data.Trending(ctx)
	if len(coins) == 0 {
		return trendingUnavailable
	}
	if len(coins) > maxTrending {
		coins = coins[:maxTrending]
	}

	var b strings.Builder
	b.WriteString(trendingHeader)
	for i, c := range coins {
		fmt.Fprintf(&b, "\n%d. **%s (%s)** - Rank: %s",
			i+1, c.Name, strings.ToUpper(c.Symbol), format.FormatRank(c.MarketCapRank))
	}

	return b.String()
}

func (a *Advisor) longTermResponse(ctx context.Context, _ string) string {
	prices := a.data.Prices(ctx, bitcoinID, ethereumID)
	btc, btcChange, _ := quoteFields(prices, bitcoinID)
	eth, ethChange, _ := quoteFields(prices, ethereumID)

	line := strings.NewReplacer(
		"{btc}", btc,
		"{btcchange}", btcChange,
		"{eth}", eth,
		"{ethchange}", ethChange,
	).Replace(liveQuoteLine)

	return a.choose(longTermTemplates) + line
}

func (a *Advisor) bitcoinResponse(ctx context.Context, _ string) string {
	return a.coinSnapshot(ctx, bitcoinID) + bitcoinAnalysis
}

func (a *Advisor) ethereumResponse(ctx context.Context, _ string) string {
	return a.coinSnapshot(ctx, ethereumID) + ethereumAnalysis
}

func (a *Advisor) coinSnapshot(ctx context.Context, id string) string {
	l := labelFor(id)
	price, change := format.Loading, format.Loading
	rank, ath := format.NotApplicable, format.NotApplicable

	detail, ok := a.data.CoinDetail(ctx, id)
	if ok {
		md := detail.MarketData
		price = format.FormatPrice(md.CurrentPrice["usd"])
		change = format.FormatPercentage(md.PriceChangePercentage24h)
		rank = format.FormatRank(detail.MarketCapRank)
		if v := md.ATH["usd"]; v > 0 {
			ath = format.FormatPrice(v)
		}
	}

	return strings.NewReplacer(
		"{icon}", l.icon,
		"{name}", l.name,
		"{price}", price,
		"{change}", change,
		"{rank}", rank,
		"{ath}", ath,
	).Replace(coinSnapshotTemplate)
}

func (a *Advisor) sustainableResponse(context.Context, string) string {
	best, ok := mostSustainable(coinProfiles)
	if !ok {
		return ""
	}
	return fmt.Sprintf("🌱 **%s** is the most sustainable choice! (sustainability score %d/10)",
		best.Name, best.SustainabilityScore)
}

func (a *Advisor) profitableResponse(context.Context, string) string {
	picks := profitablePicks(coinProfiles)
	if len(picks) == 0 {
		return "No profitable picks right now."
	}
	return "💹 **Profitable Picks:** " + strings.Join(picks, ", ") +
		" are trending up with a high market cap."
}

func (a *Advisor) help() string {
	return a.choose(helpTemplates)
}
