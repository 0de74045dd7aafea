package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type StatusSink interface {
	SetServing(ok bool)
}

// HealthProber polls storage reachability and publishes every result to Sink.
// Only transitions are logged.
type HealthProber struct {
	Store Pinger
	Sink  StatusSink

	PollEvery time.Duration
	Timeout   time.Duration
	Log       *zap.Logger
}

func (w *HealthProber) Start(ctx context.Context) {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}
	if w.PollEvery <= 0 {
		w.PollEvery = 5 * time.Second
	}
	if w.Timeout <= 0 || w.Timeout > w.PollEvery {
		w.Timeout = w.PollEvery
	}

	t := time.NewTicker(w.PollEvery)
	defer t.Stop()

	log.Info("health_prober_started", zap.Duration("poll_every", w.PollEvery))
	healthy := w.probe(ctx, log, nil)
	for {
		select {
		case <-ctx.Done():
			log.Info("health_prober_stopped")
			return
		case <-t.C:
			healthy = w.probe(ctx, log, &healthy)
		}
	}
}

func (w *HealthProber) probe(ctx context.Context, log *zap.Logger, prev *bool) bool {
	pctx, cancel := context.WithTimeout(ctx, w.Timeout)
	defer cancel()

	err := w.Store.Ping(pctx)
	ok := err == nil
	w.Sink.SetServing(ok)

	switch {
	case prev != nil && *prev == ok:
	case ok:
		log.Info("storage_reachable")
	default:
		log.Warn("storage_unreachable", zap.Error(err))
	}
	return ok
}
