package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mudatlas.dev/internal/config"
	"mudatlas.dev/internal/handlers"
	"mudatlas.dev/internal/loader"
	"mudatlas.dev/internal/logger"
)

func init() {
	logger.Init()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load config")
	}

	// Flags override the environment
	flag.StringVar(&cfg.ServerAddr, "addr", cfg.ServerAddr, "listen address")
	flag.StringVar(&cfg.DataPath, "data", cfg.DataPath, "data directory")
	flag.StringVar(&cfg.StaticPath, "static", cfg.StaticPath, "static files directory")
	capacity := flag.String("capacity", string(cfg.CapacityMode), "zone overflow handling: warn or reject")
	flag.Parse()

	cfg.CapacityMode = config.CapacityMode(*capacity)
	if err := cfg.Validate(); err != nil {
		logger.Log.WithError(err).Fatal("invalid flags")
	}

	cache := loader.NewCache(cfg.DataPath, loader.Options{
		RejectOverflow: cfg.CapacityMode == config.CapacityReject,
	})
	ds, err := cache.Get()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load reference data")
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(cfg, ds),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Log.WithField("addr", cfg.ServerAddr).Info("atlas listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("server start error")
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Warn("shutdown did not complete")
	}
	logger.Log.Info("Done.")
}
