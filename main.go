package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clocking/config"
	"clocking/database"
	"clocking/logging"
	"clocking/metrics"
	"clocking/middleware"
	"clocking/store"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "directory holding config.yaml")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "clocking: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabaseDriver, cfg.DatabaseURL, logger); err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() { _ = database.Close(database.GetDB()) }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := store.New(ctx, database.NewSnapshotRepository(database.GetDB()), logger,
		store.WithLocale(cfg.LocaleTag()),
	)
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           newRouter(cfg, s, metrics.New(), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.ServerPort))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
