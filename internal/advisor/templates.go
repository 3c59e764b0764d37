package advisor

// Canned replies. Templates with {placeholders} are filled by the live
// responders in responses.go.
//
//nolint:gochecknoglobals,lll // read-only reply text
var (
	coinQuoteTemplates = []string{
		`{icon} **{name} ({symbol}) Price Update:**

💵 **Price:** {price}
📊 **24h Change:** {change}
🏦 **Market Cap:** {cap}`,

		`{icon} **{name} ({symbol})** is trading at **{price}** right now.

📊 24h: {change}
🏦 Market cap: {cap}`,
	}

	overviewHeader = "💹 **Live Crypto Prices:**\n"

	marketTemplate = `📊 **Global Crypto Market Overview:**

🏦 **Total Market Cap:** {cap} ({change})
💱 **24h Volume:** {volume}
₿ **BTC Dominance:** {btc}
🔷 **ETH Dominance:** {eth}
🪙 **Active Cryptocurrencies:** {active}`

	trendingHeader = "🔥 **Trending Coins Right Now:**\n"

	trendingUnavailable = "🔥 **Trending Coins:**\n\nTrending data is Loading... Please try again in a moment."

	liveQuoteLine = "\n\n💵 **Live:** BTC {btc} ({btcchange}) • ETH {eth} ({ethchange})"

	coinSnapshotTemplate = `{icon} **{name} Analysis:**

**Live Snapshot:**
• Price: {price} ({change})
• Market Cap Rank: {rank}
• All-Time High: {ath}

`

	longTermTemplates = []string{
		`🚀 **For Long-Term Growth (3-5+ years):**

**Top Tier (Lower Risk):**
• **Bitcoin (BTC)** - Digital gold, store of value, institutional adoption
• **Ethereum (ETH)** - Smart contracts, DeFi ecosystem, ETH 2.0 upgrades

**High Potential (Higher Risk):**
• **Solana (SOL)** - Fast, scalable blockchain for DApps
• **Cardano (ADA)** - Academic approach, sustainable blockchain
• **Polygon (POL)** - Ethereum scaling solution

⚠️ **Remember:** Never invest more than you can afford to lose. Do your own research (DYOR)!`,

		`💡 **Long-term Crypto Strategy:**

**Core Holdings (60-70%):**
• Bitcoin & Ethereum - The safest bets in crypto

**Growth Plays (20-30%):**
• Layer 1 blockchains: Solana, Avalanche, Algorand
• DeFi tokens: Chainlink, Uniswap, Aave

**Moonshots (5-10%):**
• Emerging projects with strong fundamentals

📈 **Strategy:** Dollar-cost average (DCA) monthly, hold through volatility, take profits gradually.`,
	}

	shortTermTemplates = []string{
		`⚡ **Short-Term Trading Tips:**

**Technical Analysis Focus:**
• Watch Bitcoin dominance & market sentiment
• Use RSI, MACD, moving averages
• Set stop-losses (5-10% max loss)

**Hot Sectors:**
• AI tokens: FET, OCEAN, AGIX
• Gaming: IMX, SAND, MANA
• DeFi: UNI, SUSHI, COMP

⚠️ **Risk Warning:** Short-term trading is highly risky. 90% of traders lose money.`,
	}

	bitcoinAnalysis = `**Bullish Factors:**
• Institutional adoption (Tesla, MicroStrategy, ETFs)
• Limited supply (21M max)
• Store of value narrative
• Lightning Network growth

**Strategy:** DCA weekly, hold long-term, never sell everything.`

	ethereumAnalysis = `**Bullish Factors:**
• Staking rewards after the move to proof of stake
• DeFi & NFT ecosystem leader
• Layer 2 solutions scaling
• Deflationary tokenomics (EIP-1559)

**Risks:**
• High gas fees during congestion
• Competition from other smart contract platforms`

	analysisTemplates = []string{
		`📊 **Current Market Analysis:**

**Bull Market Indicators:**
• Bitcoin halving cycle
• Institutional adoption increasing
• Regulatory clarity improving
• Spot Bitcoin ETFs approved

**What to Watch:**
• BTC and ETH key support and resistance levels
• Bitcoin dominance as a risk-on / risk-off signal

Ask me about the **market** for live global numbers.`,
	}

	riskTemplates = []string{
		`🛡️ **Risk Management Strategy:**

**Portfolio Allocation:**
• 40% Bitcoin (safest crypto bet)
• 30% Ethereum (smart contract leader)
• 20% Top altcoins (SOL, ADA, DOT)
• 10% High-risk/high-reward plays

**Rules:**
• Never invest borrowed money
• Take profits on the way up (20%, 50%, 80% gains)
• Set stop-losses for trading positions
• Keep 6 months expenses in traditional savings`,
	}

	helpTemplates = []string{
		`💰 **General Crypto Investment Advice:**

**Golden Rules:**
1. Only invest what you can afford to lose
2. Do your own research (DYOR)
3. Dollar-cost average into positions
4. Think long-term (3-5+ years)
5. Diversify across different projects

**Red Flags:**
❌ Promises of guaranteed returns
❌ "Get rich quick" schemes
❌ Anonymous teams
❌ No real use case or utility

Ask me about specific coins, prices, strategies, or market analysis!`,

		`🎯 **How Can I Help You Today?**

I can assist with:
• **Live Prices** - BTC, ETH and the top coins
• **Market Overview** - Total market cap, dominance, volume
• **Trending Coins** - What everyone is searching for
• **Trading Strategies** - DCA, swing trading
• **Portfolio Advice** - Risk management

**Popular Questions:**
"What's the bitcoin price?"
"What's trending?"
"How should I invest long-term?"

What specific aspect interests you most?`,
	}
)
