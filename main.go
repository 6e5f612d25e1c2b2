package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/douglasmeneses/NeuroScan-app/internal/config"
	"github.com/douglasmeneses/NeuroScan-app/internal/database"
	logger "github.com/douglasmeneses/NeuroScan-app/internal/logging"
	"github.com/douglasmeneses/NeuroScan-app/internal/router"

	"go.uber.org/zap"
)

func main() {
	// A plain console logger carries us until the configured one is ready.
	bootLog, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize bootstrap logger: " + err.Error())
	}

	if err := config.Init(".", bootLog); err != nil {
		bootLog.Fatal("Failed to load configuration", zap.Error(err))
	}
	conf := config.Get()

	log, err := logger.Init(conf.Logging.Directory, logger.Rotation{
		MaxSize:    conf.Logging.MaxSize,
		MaxBackups: conf.Logging.MaxBackups,
		MaxAge:     conf.Logging.MaxAge,
		Compress:   conf.Logging.Compress,
	})
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer log.Sync()

	database.Init(log)
	database.SeedQuestionarios(log, "config/questionarios.yaml")

	r := router.Setup(log)

	srv := &http.Server{
		Addr:    ":" + conf.Server.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("Server listening on http://localhost:" + conf.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to run server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()
	log.Info("Shutdown signal received, draining in-flight requests")

	// In-flight submissions get the same window the ingest transaction does.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Ingest.TxTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown after drain timeout", zap.Error(err))
	}

	database.Close(log)
	log.Info("Server stopped")
}
