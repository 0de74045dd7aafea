package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"quotes-service/internal/bootstrap"
	"quotes-service/internal/config"
	infraconfig "quotes-service/internal/infrastructure/config"
	"quotes-service/internal/infrastructure/grpc/healthserver"
	"quotes-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger := logx.Init(config.Load().LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, cleanup, err := bootstrap.InitAPI(ctx)
	if err != nil {
		logger.Fatal("bootstrap", zap.Error(err))
	}
	defer cleanup()

	cfg := app.Config
	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:    addr,
		Handler: app.Handler,
	}

	var wg sync.WaitGroup
	if cfg.GRPCAddr != "off" {
		wg.Add(2)
		go func() {
			defer wg.Done()
			app.Prober.Start(ctx)
		}()
		go func() {
			defer wg.Done()
			if err := healthserver.RunServer(ctx, cfg.GRPCAddr, app.Health, logger); err != nil {
				logger.Error("grpc health server", zap.Error(err))
			}
		}()
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	shutdownCtx, shCancel := context.WithTimeout(context.Background(), infraconfig.DefaultShutdownTimeout)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	wg.Wait()
	logger.Info("server stopped")
}
