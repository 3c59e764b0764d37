package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// Run starts the application and blocks until shutdown.
func (a *App) Run() error {
	a.logger.Info("application-starting",
		zap.String("cache-backend", a.cfg.CacheBackend),
		zap.Duration("cache-ttl", a.marketData.TTL()),
		zap.Bool("telegram", a.bot != nil),
		zap.String("log-level", a.cfg.LogLevel))

	a.startComponents()

	// Mark as ready
	a.healthChecker.SetReady(true)

	a.logger.Info("application-ready",
		zap.String("http-addr", ":"+a.cfg.HTTPPort),
		zap.String("coingecko-url", a.cfg.CoinGeckoURL))

	// Wait for shutdown signal
	err := a.waitForShutdown()
	if err != nil {
		return err
	}

	return a.serveErr
}

func (a *App) startComponents() {
	a.wg.Add(1)
	go a.runHTTPServer()

	if a.bot != nil {
		a.wg.Add(1)
		go a.runTelegramBot()
	}
}

func (a *App) runHTTPServer() {
	defer a.wg.Done()
	err := a.httpServer.Start()
	if err != nil {
		a.logger.Error("http-server-error", zap.Error(err))
		a.serveErr = fmt.Errorf("http server: %w", err)
		a.cancel()
	}
}

func (a *App) runTelegramBot() {
	defer a.wg.Done()
	err := a.bot.Run(a.ctx)
	if err != nil {
		a.logger.Error("telegram-bot-error", zap.Error(err))
	}
}

func (a *App) waitForShutdown() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		a.logger.Info("shutdown-signal-received", zap.String("signal", sig.String()))
	case <-a.ctx.Done():
		a.logger.Info("context-cancelled")
	}

	return a.Shutdown()
}
