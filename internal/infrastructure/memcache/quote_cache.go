package memcache

import (
	"context"
	"sync"
	"time"

	"quotes-service/internal/application"
	"quotes-service/internal/domain"

	"github.com/marstr/collection/v2"
)

// QuoteCache is an in-process LRU of the latest observation per pair, placed in
// front of the durable store. Only useful for single-instance deployments.
type QuoteCache struct {
	Next application.QuoteStore

	mu  sync.Mutex
	lru *collection.LRUCache[domain.Pair, domain.Observation]
	now func() time.Time
}

var _ application.QuoteStore = (*QuoteCache)(nil)

func New(next application.QuoteStore, capacity uint) *QuoteCache {
	if capacity == 0 {
		capacity = 1024
	}
	return &QuoteCache{
		Next: next,
		lru:  collection.NewLRUCache[domain.Pair, domain.Observation](capacity),
		now:  time.Now,
	}
}

func (c *QuoteCache) FindFresh(ctx context.Context, symbolID, convertID string, window time.Duration) (domain.Observation, bool, error) {
	pair := domain.Pair{SymbolID: symbolID, ConvertID: convertID}
	c.mu.Lock()
	obs, ok := c.lru.Get(pair)
	c.mu.Unlock()
	if ok && obs.FreshAt(c.now(), window) {
		return obs, true, nil
	}

	obs, ok, err := c.Next.FindFresh(ctx, symbolID, convertID, window)
	if err != nil || !ok {
		return obs, ok, err
	}
	c.remember(obs)
	return obs, true, nil
}

func (c *QuoteCache) Append(ctx context.Context, symbolID, convertID string, price float64) (domain.Observation, error) {
	obs, err := c.Next.Append(ctx, symbolID, convertID, price)
	if err != nil {
		return obs, err
	}
	c.remember(obs)
	return obs, nil
}

func (c *QuoteCache) Ping(ctx context.Context) error { return c.Next.Ping(ctx) }

// remember keeps the newer of the cached and the given observation.
func (c *QuoteCache) remember(obs domain.Observation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.lru.Get(obs.Pair()); ok && cur.ObservedAt.After(obs.ObservedAt) {
		return
	}
	c.lru.Put(obs.Pair(), obs)
}
