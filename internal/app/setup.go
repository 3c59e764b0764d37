package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/mselser95/profitrade/internal/advisor"
	"github.com/mselser95/profitrade/internal/marketdata"
	"github.com/mselser95/profitrade/internal/telegram"
	"github.com/mselser95/profitrade/pkg/cache"
	"github.com/mselser95/profitrade/pkg/config"
	"github.com/mselser95/profitrade/pkg/healthprobe"
	"github.com/mselser95/profitrade/pkg/httpserver"
	"go.uber.org/zap"
)

const redisKeyPrefix = "profitrade:"

var errMissingTelegramToken = errors.New("TELEGRAM_BOT_TOKEN is required to run the Telegram bot")

// New creates a new application instance.
func New(cfg *config.Config, logger *zap.Logger, opts *Options) (*App, error) {
	if opts == nil {
		opts = &Options{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Initialize components
	healthChecker := setupHealthChecker()

	appCache, err := setupCache(ctx, cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup cache: %w", err)
	}

	marketData := setupMarketData(cfg, logger, appCache)
	adv := setupAdvisor(logger, marketData)
	httpServer := setupHTTPServer(cfg, logger, healthChecker, adv)

	var bot *telegram.Bot
	if opts.Telegram {
		bot, err = setupTelegram(cfg, logger, adv)
		if err != nil {
			appCache.Close()
			cancel()
			return nil, fmt.Errorf("setup telegram: %w", err)
		}
	}

	return &App{
		cfg:           cfg,
		logger:        logger,
		healthChecker: healthChecker,
		cache:         appCache,
		marketData:    marketData,
		advisor:       adv,
		httpServer:    httpServer,
		bot:           bot,
		ctx:           ctx,
		cancel:        cancel,
	}, nil
}

func setupHealthChecker() *healthprobe.HealthChecker {
	return healthprobe.New()
}

func setupCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (cache.Cache, error) {
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		logger.Info("cache-backend-selected",
			zap.String("backend", cfg.CacheBackend),
			zap.String("addr", cfg.RedisAddr))
		redisCache, err := cache.NewRedisCache(ctx, &cache.RedisConfig{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: redisKeyPrefix,
			Logger:    logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create redis cache: %w", err)
		}
		return redisCache, nil
	case config.CacheBackendMemory, "":
		logger.Info("cache-backend-selected",
			zap.String("backend", config.CacheBackendMemory),
			zap.Int("max-entries", cfg.CacheMaxEntries))
		maxEntries := int64(cfg.CacheMaxEntries)
		memCache, err := cache.NewRistrettoCache(&cache.RistrettoConfig{
			NumCounters: maxEntries * 10, // 10x expected max items
			MaxCost:     maxEntries,
			BufferItems: 64, // Buffer size for Get operations
			Logger:      logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create ristretto cache: %w", err)
		}
		return memCache, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}

func setupMarketData(cfg *config.Config, logger *zap.Logger, appCache cache.Cache) *marketdata.Client {
	return marketdata.NewClient(&marketdata.Config{
		BaseURL: cfg.CoinGeckoURL,
		APIKey:  cfg.CoinGeckoAPIKey,
		Timeout: cfg.MarketDataTimeout,
		TTL:     cfg.MarketDataCacheTTL,
		Cache:   appCache,
		Logger:  logger,
	})
}

func setupAdvisor(logger *zap.Logger, marketData advisor.MarketData) *advisor.Advisor {
	return advisor.New(&advisor.Config{
		MarketData: marketData,
		Logger:     logger,
	})
}

func setupHTTPServer(
	cfg *config.Config,
	logger *zap.Logger,
	healthChecker *healthprobe.HealthChecker,
	adv *advisor.Advisor,
) *httpserver.Server {
	return httpserver.New(&httpserver.Config{
		Port:          cfg.HTTPPort,
		Logger:        logger,
		HealthChecker: healthChecker,
		Asker:         adv,
	})
}

func setupTelegram(cfg *config.Config, logger *zap.Logger, adv *advisor.Advisor) (*telegram.Bot, error) {
	if cfg.TelegramBotToken == "" {
		return nil, errMissingTelegramToken
	}

	return telegram.New(&telegram.Config{
		Token:   cfg.TelegramBotToken,
		Advisor: adv,
		Logger:  logger,
	})
}
