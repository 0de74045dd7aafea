//go:build wireinject

package bootstrap

import (
	"context"

	"github.com/google/wire"
)

var infraSet = wire.NewSet(
	ProvideLogger,
	ProvideConfig,
	ProvideDB,
	ProvideQuoteStore,
	ProvidePriceProvider,
	ProvideResolver,
)

// API injector: builds *App + Cleanup
func InitAPI(ctx context.Context) (*App, func(), error) {
	wire.Build(
		infraSet,
		ProvideHandler,
		ProvideHealthReporter,
		ProvideHealthProber,
		ProvideApp,
	)
	return nil, nil, nil
}
