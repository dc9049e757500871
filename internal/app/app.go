package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"spellchecker/internal/config"
	"spellchecker/internal/transport"
)

// Run loads configuration, builds the service and serves the HTTP API until
// ctx is cancelled. Shutdown waits up to Server.ShutdownTimeout for in-flight
// requests.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting spellchecker",
		slog.String("variant", cfg.Checker.Variant),
		slog.String("domain", cfg.Checker.Domain),
		slog.String("log_level", cfg.Log.Level),
	)

	svc, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      transport.NewHandler(svc, cfg.Server.MaxBatch, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return nil
}
