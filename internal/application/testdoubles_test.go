package application

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"quotes-service/internal/domain"
)

// memStore is an append-only in-memory QuoteStore with database-like timestamps.
type memStore struct {
	mu      sync.Mutex
	rows    []domain.Observation
	now     func() time.Time
	appends int
}

func (m *memStore) clock() time.Time {
	if m.now != nil {
		return m.now()
	}
	return time.Now().UTC()
}

func (m *memStore) FindFresh(_ context.Context, symbolID, convertID string, window time.Duration) (domain.Observation, bool, error) {
	m.mu.Lock()
	var (
		best  domain.Observation
		found bool
	)
	now := m.clock()
	for _, r := range m.rows {
		if r.SymbolID != symbolID || r.ConvertID != convertID || !r.FreshAt(now, window) {
			continue
		}
		if !found || r.ObservedAt.After(best.ObservedAt) {
			best, found = r, true
		}
	}
	m.mu.Unlock()
	return best, found, nil
}

func (m *memStore) Append(_ context.Context, symbolID, convertID string, price float64) (domain.Observation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := domain.Observation{SymbolID: symbolID, ConvertID: convertID, Price: price, ObservedAt: m.clock()}
	m.rows = append(m.rows, o)
	m.appends++
	return o, nil
}

func (m *memStore) Ping(context.Context) error { return nil }

func (m *memStore) appendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appends
}

// gatedProvider blocks every call until release is closed.
type gatedProvider struct {
	price   float64
	calls   atomic.Int32
	arrived chan struct{}
	release chan struct{}
}

func newGatedProvider(price float64) *gatedProvider {
	return &gatedProvider{price: price, arrived: make(chan struct{}, 64), release: make(chan struct{})}
}

func (g *gatedProvider) FetchPrice(ctx context.Context, _, _ string) (float64, bool, error) {
	g.calls.Add(1)
	g.arrived <- struct{}{}
	select {
	case <-g.release:
		return g.price, true, nil
	case <-ctx.Done():
		return 0, false, ctx.Err()
	}
}

// joinCtx closes joined the first time Done is called. The resolver only asks
// for Done once the caller is waiting on a shared fetch.
type joinCtx struct {
	context.Context
	once   sync.Once
	joined chan struct{}
}

func newJoinCtx(parent context.Context) *joinCtx {
	return &joinCtx{Context: parent, joined: make(chan struct{})}
}

func (c *joinCtx) Done() <-chan struct{} {
	c.once.Do(func() { close(c.joined) })
	return c.Context.Done()
}
