package healthserver

import (
	"context"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// QuoteService is reported alongside the overall ("") status.
const QuoteService = "quotes.v1.QuoteService"

// Reporter publishes storage reachability as grpc.health.v1 serving status.
// It starts NOT_SERVING until the first probe succeeds.
type Reporter struct {
	hs *health.Server
}

func NewReporter() *Reporter {
	r := &Reporter{hs: health.NewServer()}
	r.SetServing(false)
	return r
}

func (r *Reporter) SetServing(ok bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}
	r.hs.SetServingStatus("", st)
	r.hs.SetServingStatus(QuoteService, st)
}

func (r *Reporter) Register(gs *grpc.Server) { healthpb.RegisterHealthServer(gs, r.hs) }

// RunServer starts a gRPC server exposing the health service and blocks until context is done.
func RunServer(ctx context.Context, addr string, rep *Reporter, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	gs := grpc.NewServer(grpc.Creds(insecure.NewCredentials()))
	rep.Register(gs)
	errCh := make(chan error, 1)
	go func() {
		log.Info("grpc_server_started", zap.String("addr", addr))
		if err := gs.Serve(lis); err != nil {
			errCh <- err
			return
		}
		errCh <- nil
	}()
	select {
	case <-ctx.Done():
		log.Info("grpc_server_stopping")
		rep.hs.Shutdown()
		gs.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}
