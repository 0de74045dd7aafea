package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"quotes-service/internal/application"
	"quotes-service/internal/config"
	"quotes-service/internal/infrastructure/grpc/healthserver"
	httpserver "quotes-service/internal/infrastructure/http"
	"quotes-service/internal/infrastructure/httpx"
	"quotes-service/internal/infrastructure/logx"
	"quotes-service/internal/infrastructure/memcache"
	"quotes-service/internal/infrastructure/pg"
	"quotes-service/internal/infrastructure/provider"
	redisstore "quotes-service/internal/infrastructure/redis"
	"quotes-service/internal/infrastructure/worker"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	ErrMissingDBURL  = errors.New("DATABASE_URL is required")
	ErrMissingCMCKey = errors.New("CMC_API_KEY is required for PROVIDER=cmc")
)

const fakePrice = 1.2345

// App is everything cmd/api needs to run the process.
type App struct {
	Config  config.Config
	Log     *zap.Logger
	Handler http.Handler
	Health  *healthserver.Reporter
	Prober  *worker.HealthProber
}

func ProvideLogger() *zap.Logger { return logx.L() }

func ProvideConfig() config.Config { return config.Load() }

func ProvideDB(ctx context.Context, log *zap.Logger, cfg config.Config) (*pg.DB, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, func() {}, ErrMissingDBURL
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL, pg.Options{
		MaxConns:       cfg.PGMaxConns,
		IdleTimeout:    cfg.PGIdleTimeout,
		AcquireTimeout: cfg.PGAcquireTimeout,
	})
	if err != nil {
		return nil, func() {}, err
	}
	if cfg.Migrate {
		if err := pg.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, func() {}, err
		}
	}
	cleanup := func() {
		log.Info("closing pg")
		db.Close()
	}
	return db, cleanup, nil
}

// ProvideQuoteStore builds the PG store and wraps it with the cache selected by QUOTE_CACHE.
func ProvideQuoteStore(db *pg.DB, cfg config.Config, log *zap.Logger) (application.QuoteStore, func(), error) {
	base := pg.NewQuoteStore(db)
	switch cfg.QuoteCache {
	case "", "none":
		return base, func() {}, nil
	case "memory":
		size := cfg.MemCacheSize
		if size <= 0 {
			size = 1024
		}
		return memcache.New(base, uint(size)), func() {}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cleanup := func() {
			log.Info("closing redis")
			_ = client.Close()
		}
		return redisstore.New(base, client, cfg.FreshnessWindow, log), cleanup, nil
	default:
		return nil, func() {}, fmt.Errorf("unsupported QUOTE_CACHE=%q", cfg.QuoteCache)
	}
}

func ProvidePriceProvider(cfg config.Config) (application.PriceProvider, error) {
	switch cfg.Provider {
	case "fake":
		return provider.NewFake(fakePrice), nil
	case "", "cmc":
		if cfg.CMCAPIKey == "" {
			return nil, ErrMissingCMCKey
		}
		return &provider.CoinMarketCap{
			BaseURL: cfg.CMCAPIBase,
			APIKey:  cfg.CMCAPIKey,
			Client:  httpx.New(cfg.UpstreamTimeout),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported PROVIDER=%q", cfg.Provider)
	}
}

func ProvideResolver(store application.QuoteStore, pp application.PriceProvider, cfg config.Config, log *zap.Logger) *application.QuoteResolver {
	opts := []application.Option{
		application.WithDefaultWindow(cfg.FreshnessWindow),
		application.WithLogger(log),
	}
	if cfg.SingleFlight {
		opts = append(opts, application.WithSingleFlight())
	}
	return application.NewQuoteResolver(store, pp, opts...)
}

func ProvideHandler(res *application.QuoteResolver, cfg config.Config, log *zap.Logger) http.Handler {
	srv := httpserver.NewServer(res,
		httpserver.WithFreshnessWindow(cfg.FreshnessWindow),
		httpserver.WithLogger(log),
		httpserver.WithDevErrors(cfg.IsDevelopment()),
		httpserver.WithCORSOrigins(cfg.CORSOrigins),
	)
	return httpserver.NewRouter(srv)
}

func ProvideHealthReporter() *healthserver.Reporter { return healthserver.NewReporter() }

func ProvideHealthProber(store application.QuoteStore, rep *healthserver.Reporter, cfg config.Config, log *zap.Logger) *worker.HealthProber {
	return &worker.HealthProber{
		Store:     store,
		Sink:      rep,
		PollEvery: cfg.HealthPoll,
		Log:       log,
	}
}

func ProvideApp(cfg config.Config, log *zap.Logger, h http.Handler, rep *healthserver.Reporter, prober *worker.HealthProber) *App {
	return &App{Config: cfg, Log: log, Handler: h, Health: rep, Prober: prober}
}
