// Package advisor answers free-text crypto questions.
//
// A query is lower-cased and tested against an ordered list of rules; the
// first rule whose keywords appear in the query produces the answer. The
// default rule is always last and always matches, so every query gets a
// non-empty reply. Live rules read market data through MarketData, which is
// fail-soft: missing data renders as placeholders instead of errors.
package advisor

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mselser95/profitrade/pkg/types"
	"go.uber.org/zap"
)

// MarketData is the live data the advisor reads. Implementations must not
// fail: unavailable data is reported as empty values.
type MarketData interface {
	Prices(ctx context.Context, ids ...string) map[string]types.PriceSnapshot
	GlobalMarket(ctx context.Context) (types.GlobalMarket, bool)
	Trending(ctx context.Context) []types.TrendingCoin
	CoinDetail(ctx context.Context, id string) (types.CoinDetail, bool)
}

// RandomSource picks template indexes. *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// Advisor classifies queries and builds replies.
type Advisor struct {
	data   MarketData
	random RandomSource
	rules  []rule
	logger *zap.Logger
}

// Config holds advisor configuration.
type Config struct {
	MarketData MarketData
	Random     RandomSource // Default: math/rand/v2 global source
	Logger     *zap.Logger
}

// New creates a new Advisor.
func New(cfg *Config) *Advisor {
	random := cfg.Random
	if random == nil {
		random = globalRandom{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Advisor{
		data:   cfg.MarketData,
		random: random,
		logger: logger,
	}
	a.rules = a.buildRules()

	return a
}

// Ask answers a query. The reply is never empty.
func (a *Advisor) Ask(ctx context.Context, query string) string {
	q := strings.ToLower(query)
	r := a.match(q)

	logger := a.logger.With(
		zap.String("query-id", uuid.New().String()),
		zap.String("branch", r.branch))

	start := time.Now()
	response := r.respond(ctx, q)
	if response == "" {
		logger.Warn("advisor-empty-response")
		response = a.help()
	}

	QueriesTotal.WithLabelValues(r.branch).Inc()
	ResponseDurationSeconds.WithLabelValues(r.branch).Observe(time.Since(start).Seconds())

	logger.Info("advisor-answered",
		zap.Int("query-length", len(query)),
		zap.Duration("duration", time.Since(start)))

	return response
}

// Classify returns the branch that would answer query, without building the reply.
func (a *Advisor) Classify(query string) string {
	return a.match(strings.ToLower(query)).branch
}

// Branches lists branch names in evaluation order. The last one is BranchDefault.
func (a *Advisor) Branches() []string {
	names := make([]string, 0, len(a.rules))
	for _, r := range a.rules {
		names = append(names, r.branch)
	}
	return names
}

// Help returns one of the default help texts.
func (a *Advisor) Help() string {
	return a.help()
}

func (a *Advisor) match(q string) rule {
	for _, r := range a.rules {
		if r.match(q) {
			return r
		}
	}
	// Unreachable while the default rule is last.
	return a.rules[len(a.rules)-1]
}

func (a *Advisor) choose(templates []string) string {
	if len(templates) == 1 {
		return templates[0]
	}
	return templates[a.random.IntN(len(templates))]
}
