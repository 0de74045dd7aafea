package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quotes-service/internal/application"
	"quotes-service/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "quote:"

// putNewer stores the observation only if no newer one is cached. Timestamps
// are unix microseconds, the precision PG keeps and Lua numbers hold exactly.
var putNewer = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'ts')
if cur and tonumber(cur) > tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'ts', ARGV[1], 'v', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// QuoteCache keeps the latest observation per pair in Redis in front of the
// durable store. Redis failures are logged and fall through to Next.
type QuoteCache struct {
	Next   application.QuoteStore
	Client *redis.Client
	// TTL bounds how long an observation may live in Redis; it should be at
	// least the largest freshness window in use.
	TTL time.Duration
	Log *zap.Logger

	now func() time.Time
}

var _ application.QuoteStore = (*QuoteCache)(nil)

func New(next application.QuoteStore, client *redis.Client, ttl time.Duration, log *zap.Logger) *QuoteCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteCache{Next: next, Client: client, TTL: ttl, Log: log, now: time.Now}
}

type cachedQuote struct {
	SymbolID   string    `json:"symbol_id"`
	ConvertID  string    `json:"convert_id"`
	Price      float64   `json:"quote"`
	ObservedAt time.Time `json:"requested_at"`
}

func key(symbolID, convertID string) string {
	return keyPrefix + domain.Pair{SymbolID: symbolID, ConvertID: convertID}.Key()
}

func (c *QuoteCache) FindFresh(ctx context.Context, symbolID, convertID string, window time.Duration) (domain.Observation, bool, error) {
	if obs, ok := c.get(ctx, symbolID, convertID); ok && obs.FreshAt(c.now(), window) {
		return obs, true, nil
	}
	obs, ok, err := c.Next.FindFresh(ctx, symbolID, convertID, window)
	if err != nil || !ok {
		return obs, ok, err
	}
	c.put(ctx, obs)
	return obs, true, nil
}

func (c *QuoteCache) Append(ctx context.Context, symbolID, convertID string, price float64) (domain.Observation, error) {
	obs, err := c.Next.Append(ctx, symbolID, convertID, price)
	if err != nil {
		return obs, err
	}
	c.put(ctx, obs)
	return obs, nil
}

func (c *QuoteCache) Ping(ctx context.Context) error { return c.Next.Ping(ctx) }

func (c *QuoteCache) get(ctx context.Context, symbolID, convertID string) (domain.Observation, bool) {
	raw, err := c.Client.HGet(ctx, key(symbolID, convertID), "v").Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.Log.Warn("redis.get_failed", zap.Error(err))
		}
		return domain.Observation{}, false
	}
	var cq cachedQuote
	if err := json.Unmarshal(raw, &cq); err != nil {
		c.Log.Warn("redis.decode_failed", zap.Error(err))
		return domain.Observation{}, false
	}
	return domain.Observation(cq), true
}

func (c *QuoteCache) put(ctx context.Context, obs domain.Observation) {
	ttl := c.TTL - c.now().Sub(obs.ObservedAt)
	if ttl <= 0 {
		return
	}
	raw, err := json.Marshal(cachedQuote(obs))
	if err != nil {
		return
	}
	stored, err := putNewer.Run(ctx, c.Client,
		[]string{key(obs.SymbolID, obs.ConvertID)},
		obs.ObservedAt.UnixMicro(), raw, ttl.Milliseconds(),
	).Int()
	if err != nil {
		c.Log.Warn("redis.set_failed", zap.Error(err))
		return
	}
	if stored == 0 {
		c.Log.Debug("redis.set_skipped_older", zap.Time("observed_at", obs.ObservedAt))
	}
}
