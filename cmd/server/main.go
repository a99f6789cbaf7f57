package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"gestorfichas/internal/app/server/api"
	"gestorfichas/internal/config"
	"gestorfichas/internal/logger"
	"gestorfichas/internal/storage/jsonfile"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	storage, err := jsonfile.New(cfg.Storage.DataDir)
	if err != nil {
		log.Error("init storage", slog.Any("error", err))
		os.Exit(1)
	}

	server := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: api.New(storage, cfg, log),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening", slog.String("address", cfg.Server.RunAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", slog.Any("error", err))
	}
	log.Info("server stopped")
}
