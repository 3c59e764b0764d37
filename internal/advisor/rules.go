package advisor

import (
	"context"
	"strings"
)

// Branch names, in evaluation order.
const (
	BranchPrice       = "price"
	BranchMarket      = "market"
	BranchTrending    = "trending"
	BranchLongTerm    = "long-term"
	BranchShortTerm   = "short-term"
	BranchBitcoin     = "bitcoin"
	BranchEthereum    = "ethereum"
	BranchAnalysis    = "analysis"
	BranchRisk        = "risk"
	BranchSustainable = "sustainable"
	BranchProfitable  = "profitable"
	BranchDefault     = "default"
)

// Asset keyword sets used both for routing and for scoping price lookups.
//
//nolint:gochecknoglobals // read-only keyword tables
var (
	bitcoinKeywords  = []string{"bitcoin", "btc"}
	ethereumKeywords = []string{"ethereum", "eth"}
)

// rule pairs a predicate over the lower-cased query with its responder.
type rule struct {
	branch  string
	match   func(q string) bool
	respond func(ctx context.Context, q string) string
}

// buildRules returns the rules in precedence order. Live-data rules come
// before the static advice so that "bitcoin price" quotes a price instead of
// returning the Bitcoin essay.
func (a *Advisor) buildRules() []rule {
	return []rule{
		{
			branch:  BranchPrice,
			match:   containsAny("price", "cost", "worth", "how much", "value"),
			respond: a.priceResponse,
		},
		{
			branch:  BranchMarket,
			match:   containsAny("market", "overview", "global", "dominance"),
			respond: a.marketResponse,
		},
		{
			branch:  BranchTrending,
			match:   containsAny("trending", "trend", "hot", "popular"),
			respond: a.trendingResponse,
		},
		{
			branch:  BranchLongTerm,
			match:   containsAny("long-term", "long term", "hold", "hodl", "years", "invest"),
			respond: a.longTermResponse,
		},
		{
			branch:  BranchShortTerm,
			match:   containsAny("short-term", "short term", "trading", "quick", "fast"),
			respond: a.static(shortTermTemplates),
		},
		{
			branch:  BranchBitcoin,
			match:   containsAny(bitcoinKeywords...),
			respond: a.bitcoinResponse,
		},
		{
			branch:  BranchEthereum,
			match:   containsAny(ethereumKeywords...),
			respond: a.ethereumResponse,
		},
		{
			branch:  BranchAnalysis,
			match:   containsAny("analysis", "outlook", "prediction"),
			respond: a.static(analysisTemplates),
		},
		{
			branch:  BranchRisk,
			match:   containsAny("risk", "safe", "strategy", "portfolio"),
			respond: a.static(riskTemplates),
		},
		{
			branch:  BranchSustainable,
			match:   containsAny("sustainable", "sustainability", "eco-friendly", "environment", "green"),
			respond: a.sustainableResponse,
		},
		{
			branch:  BranchProfitable,
			match:   containsAny("profitable", "profit"),
			respond: a.profitableResponse,
		},
		{
			branch:  BranchDefault,
			match:   func(string) bool { return true },
			respond: func(context.Context, string) string { return a.help() },
		},
	}
}

func containsAny(keywords ...string) func(q string) bool {
	return func(q string) bool {
		for _, kw := range keywords {
			if strings.Contains(q, kw) {
				return true
			}
		}
		return false
	}
}

func (a *Advisor) static(templates []string) func(context.Context, string) string {
	return func(context.Context, string) string {
		return a.choose(templates)
	}
}
