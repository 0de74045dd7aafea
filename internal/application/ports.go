package application

import (
	"context"
	"time"

	"quotes-service/internal/domain"
)

//go:generate mockgen -package=application -destination=mocks_test.go -source=ports.go QuoteStore,PriceProvider

// QuoteStore persists price observations. FindFresh reports ok=false with a nil
// error when no observation for the pair is younger than window.
type QuoteStore interface {
	FindFresh(ctx context.Context, symbolID, convertID string, window time.Duration) (domain.Observation, bool, error)
	Append(ctx context.Context, symbolID, convertID string, price float64) (domain.Observation, error)
	Ping(ctx context.Context) error
}

// PriceProvider fetches a live price from the upstream market-data API.
// ok=false with a nil error means the upstream answered without a price for the pair.
type PriceProvider interface {
	FetchPrice(ctx context.Context, symbolID, convertID string) (price float64, ok bool, err error)
}
