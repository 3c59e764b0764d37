package app

import (
	"context"
	"time"

	"github.com/mselser95/profitrade/pkg/cache"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Shutdown gracefully shuts down the application. It is safe to call more
// than once.
func (a *App) Shutdown() error {
	a.shutdownOnce.Do(a.shutdown)
	return nil
}

func (a *App) shutdown() {
	a.logger.Info("application-shutting-down")

	a.healthChecker.SetReady(false)

	// Cancel context to signal all components
	a.cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	err := a.httpServer.Shutdown(shutdownCtx)
	if err != nil {
		a.logger.Error("http-server-shutdown-error", zap.Error(err))
	}

	// Wait for all goroutines
	a.wg.Wait()

	a.logCacheStats()
	a.cache.Close()

	a.logger.Info("application-shutdown-complete")
}

// Close releases resources of an app that was never Run.
func (a *App) Close() {
	a.shutdownOnce.Do(func() {
		a.cancel()
		a.logCacheStats()
		a.cache.Close()
	})
}

// logCacheStats reports the in-memory cache counters. Redis keeps its own.
func (a *App) logCacheStats() {
	rc, ok := a.cache.(*cache.RistrettoCache)
	if !ok {
		return
	}

	m := rc.Metrics()
	if m == nil {
		return
	}

	a.logger.Info("cache-stats",
		zap.Uint64("hits", m.Hits()),
		zap.Uint64("misses", m.Misses()),
		zap.Float64("hit-ratio", m.Ratio()),
		zap.Uint64("keys-added", m.KeysAdded()),
		zap.Uint64("keys-evicted", m.KeysEvicted()),
	)
}
