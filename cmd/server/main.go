// Command server serves the spell checker HTTP API.
//
//	POST   /api/v1/correct          {"text": "..."}
//	POST   /api/v1/correct/batch    {"texts": ["...", "..."]}
//	POST   /api/v1/custom-word      {"word": "..."}
//	DELETE /api/v1/custom-word/{word}
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"spellchecker/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
