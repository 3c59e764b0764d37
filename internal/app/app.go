// Package app wires the market data client, the advisor and the front ends
// into a runnable service.
package app

import (
	"context"
	"sync"

	"github.com/mselser95/profitrade/internal/advisor"
	"github.com/mselser95/profitrade/internal/marketdata"
	"github.com/mselser95/profitrade/internal/telegram"
	"github.com/mselser95/profitrade/pkg/cache"
	"github.com/mselser95/profitrade/pkg/config"
	"github.com/mselser95/profitrade/pkg/healthprobe"
	"github.com/mselser95/profitrade/pkg/httpserver"
	"go.uber.org/zap"
)

// App is the main application orchestrator.
type App struct {
	cfg           *config.Config
	logger        *zap.Logger
	healthChecker *healthprobe.HealthChecker
	cache         cache.Cache
	marketData    *marketdata.Client
	advisor       *advisor.Advisor
	httpServer    *httpserver.Server
	bot           *telegram.Bot // nil unless Options.Telegram
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	shutdownOnce  sync.Once
	serveErr      error // set by the HTTP goroutine before wg.Done
}

// Options holds application options.
type Options struct {
	Telegram bool // Also answer Telegram messages; needs TELEGRAM_BOT_TOKEN
}

// Ask answers one query with the configured advisor.
func (a *App) Ask(ctx context.Context, query string) string {
	return a.advisor.Ask(ctx, query)
}

// Advisor returns the advisor.
func (a *App) Advisor() *advisor.Advisor {
	return a.advisor
}

// Ready reports whether the app is serving traffic.
func (a *App) Ready() bool {
	return a.healthChecker.IsReady()
}

// Stop asks a running app to shut down, as a signal would.
func (a *App) Stop() {
	a.cancel()
}
