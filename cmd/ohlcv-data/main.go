package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ohlcv-data/internal/app"
	"ohlcv-data/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer a.Exchange.Close()

	slog.SetDefault(slogx.NewDefault(a.Config.LogLevel))
	slog.Info("using exchange", "exchange", a.Exchange.Name(), "format", a.Saver.Extension())

	// SIGINT/SIGTERM cancels between pages; the fetch itself stays sequential.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := app.Run(ctx, a.Config, a.Exchange, a.Saver); err != nil {
		slog.Error("fetch failed", "error", err)
		os.Exit(1)
	}
}
