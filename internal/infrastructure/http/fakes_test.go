package httpserver

import (
	"context"
	"errors"
	"sync"
	"time"

	"quotes-service/internal/application"
	"quotes-service/internal/domain"
)

var _ application.QuoteStore = (*fakeQuoteStore)(nil)
var _ application.PriceProvider = (*fakeProvider)(nil)

type fakeQuoteStore struct {
	mu      sync.Mutex
	rows    []domain.Observation
	appends int
	pingErr error
}

func (f *fakeQuoteStore) FindFresh(_ context.Context, symbolID, convertID string, window time.Duration) (domain.Observation, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for i := len(f.rows) - 1; i >= 0; i-- {
		r := f.rows[i]
		if r.SymbolID == symbolID && r.ConvertID == convertID && r.FreshAt(now, window) {
			return r, true, nil
		}
	}
	return domain.Observation{}, false, nil
}

func (f *fakeQuoteStore) Append(_ context.Context, symbolID, convertID string, price float64) (domain.Observation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := domain.Observation{SymbolID: symbolID, ConvertID: convertID, Price: price, ObservedAt: time.Now().UTC()}
	f.rows = append(f.rows, o)
	f.appends++
	return o, nil
}

func (f *fakeQuoteStore) Ping(context.Context) error { return f.pingErr }

type fakeProvider struct {
	price float64
	ok    bool
	err   error
	calls int
}

func (f *fakeProvider) FetchPrice(context.Context, string, string) (float64, bool, error) {
	f.calls++
	return f.price, f.ok, f.err
}

// stubService returns canned resolver outcomes.
type stubService struct {
	obs     domain.Observation
	err     error
	healthy bool
	window  time.Duration
	panics  bool
}

func (s *stubService) Resolve(_ context.Context, _, _ string, window time.Duration) (domain.Observation, error) {
	if s.panics {
		panic("kaboom")
	}
	s.window = window
	return s.obs, s.err
}

func (s *stubService) Healthy(context.Context) bool { return s.healthy }

func NewInMemoryService(p *fakeProvider) (*application.QuoteResolver, *fakeQuoteStore) {
	store := &fakeQuoteStore{}
	return application.NewQuoteResolver(store, p), store
}

var errCMC = errors.New("CMC API Error")
