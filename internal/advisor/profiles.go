package advisor

// PriceTrend is the static direction label of a coin profile.
type PriceTrend string

// Price trends.
const (
	TrendRising  PriceTrend = "rising"
	TrendStable  PriceTrend = "stable"
	TrendFalling PriceTrend = "falling"
)

// MarketCapTier is a coarse market-cap bucket.
type MarketCapTier string

// Market cap tiers.
const (
	TierHigh   MarketCapTier = "high"
	TierMedium MarketCapTier = "medium"
)

// CoinProfile is a hand-curated description of a coin, used by the
// sustainable and profitable branches.
type CoinProfile struct {
	Name                string
	SustainabilityScore int // 0-10, higher is greener
	PriceTrend          PriceTrend
	MarketCap           MarketCapTier
}

//nolint:gochecknoglobals // read-only table
var coinProfiles = []CoinProfile{
	{Name: "Bitcoin", SustainabilityScore: 3, PriceTrend: TrendRising, MarketCap: TierHigh},
	{Name: "Ethereum", SustainabilityScore: 8, PriceTrend: TrendRising, MarketCap: TierHigh},
	{Name: "Cardano", SustainabilityScore: 9, PriceTrend: TrendStable, MarketCap: TierMedium},
	{Name: "Solana", SustainabilityScore: 7, PriceTrend: TrendRising, MarketCap: TierHigh},
	{Name: "Algorand", SustainabilityScore: 8, PriceTrend: TrendRising, MarketCap: TierMedium},
	{Name: "Polygon", SustainabilityScore: 7, PriceTrend: TrendFalling, MarketCap: TierMedium},
}

// mostSustainable returns the profile with the highest score; ties go to the
// earlier entry.
func mostSustainable(profiles []CoinProfile) (CoinProfile, bool) {
	if len(profiles) == 0 {
		return CoinProfile{}, false
	}

	best := profiles[0]
	for _, p := range profiles[1:] {
		if p.SustainabilityScore > best.SustainabilityScore {
			best = p
		}
	}
	return best, true
}

// profitablePicks returns rising, high market-cap coins in table order.
func profitablePicks(profiles []CoinProfile) []string {
	var picks []string
	for _, p := range profiles {
		if p.PriceTrend == TrendRising && p.MarketCap == TierHigh {
			picks = append(picks, p.Name)
		}
	}
	return picks
}
