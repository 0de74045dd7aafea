package application

import (
	"context"
	"errors"
	"time"

	"quotes-service/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultFreshnessWindow = 30 * time.Minute

// QuoteResolver serves quotes cache-aside: a fresh stored observation wins,
// otherwise the provider is asked once and its price is appended to the store.
type QuoteResolver struct {
	store    QuoteStore
	provider PriceProvider
	window   time.Duration
	log      *zap.Logger

	flight *singleflight.Group
}

type Option func(*QuoteResolver)

func WithDefaultWindow(d time.Duration) Option { return func(r *QuoteResolver) { r.window = d } }
func WithLogger(l *zap.Logger) Option          { return func(r *QuoteResolver) { r.log = l } }

// WithSingleFlight collapses concurrent cache misses for the same pair into one
// upstream fetch and one appended row. The fetch is not canceled when the caller
// that started it goes away. Off by default.
func WithSingleFlight() Option {
	return func(r *QuoteResolver) { r.flight = &singleflight.Group{} }
}

func NewQuoteResolver(store QuoteStore, provider PriceProvider, opts ...Option) *QuoteResolver {
	r := &QuoteResolver{
		store:    store,
		provider: provider,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.window <= 0 {
		r.window = DefaultFreshnessWindow
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	return r
}

func (r *QuoteResolver) DefaultWindow() time.Duration { return r.window }

// Resolve returns the freshest observation for the pair within window. It
// returns domain.ErrQuoteNotFound when upstream has no price for the pair,
// *UpstreamError when the provider call fails and *StorageError on store failures.
func (r *QuoteResolver) Resolve(ctx context.Context, symbolID, convertID string, window time.Duration) (domain.Observation, error) {
	pair := domain.NewPair(symbolID, convertID)
	if err := pair.Validate(); err != nil {
		return domain.Observation{}, err
	}
	if window <= 0 {
		window = r.window
	}
	log := r.log.With(
		zap.String("symbol_id", pair.SymbolID),
		zap.String("convert_id", pair.ConvertID),
		zap.Duration("window", window),
	)

	obs, ok, err := r.store.FindFresh(ctx, pair.SymbolID, pair.ConvertID, window)
	if err != nil {
		log.Error("resolve.find_failed", zap.Error(err))
		return domain.Observation{}, storageErr("find_fresh", err)
	}
	if ok {
		log.Debug("resolve.cache_hit", zap.Time("observed_at", obs.ObservedAt))
		return obs, nil
	}
	log.Debug("resolve.cache_miss")

	if r.flight == nil {
		return r.fetchAndStore(ctx, log, pair)
	}
	// The shared fetch outlives any single caller; each caller stops waiting on its own ctx.
	ch := r.flight.DoChan(pair.Key(), func() (any, error) {
		return r.fetchAndStore(context.WithoutCancel(ctx), log, pair)
	})
	select {
	case <-ctx.Done():
		log.Debug("resolve.caller_gone", zap.Error(ctx.Err()))
		return domain.Observation{}, ctx.Err()
	case res := <-ch:
		if res.Shared {
			log.Debug("resolve.shared_fetch")
		}
		if res.Err != nil {
			return domain.Observation{}, res.Err
		}
		return res.Val.(domain.Observation), nil
	}
}

func (r *QuoteResolver) fetchAndStore(ctx context.Context, log *zap.Logger, pair domain.Pair) (domain.Observation, error) {
	price, ok, err := r.provider.FetchPrice(ctx, pair.SymbolID, pair.ConvertID)
	if err != nil {
		log.Warn("resolve.upstream_failed", zap.Error(err))
		return domain.Observation{}, &UpstreamError{Err: err}
	}
	if !ok {
		log.Info("resolve.quote_not_found")
		return domain.Observation{}, domain.ErrQuoteNotFound
	}

	obs, err := r.store.Append(ctx, pair.SymbolID, pair.ConvertID, price)
	if err != nil {
		log.Error("resolve.append_failed", zap.Error(err))
		return domain.Observation{}, storageErr("append", err)
	}
	log.Info("resolve.fetched", zap.Float64("price", obs.Price), zap.Time("observed_at", obs.ObservedAt))
	return obs, nil
}

// Healthy reports storage reachability; the cause is logged, not returned.
func (r *QuoteResolver) Healthy(ctx context.Context) bool {
	if err := r.store.Ping(ctx); err != nil {
		r.log.Warn("health.storage_unreachable", zap.Error(err))
		return false
	}
	return true
}

func storageErr(op string, err error) error {
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
