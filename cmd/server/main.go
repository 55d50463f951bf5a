package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"hrdash/internal/app/server"
	"hrdash/internal/platform/config"
	"hrdash/internal/platform/logger"
)

func main() {
	envFile := flag.String("env", "", "path to an env file (defaults to ./.env when present)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	baseLogger := logger.Must(logger.New(cfg.LogLevel))
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := server.New(ctx, cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to start", zap.Error(err))
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		baseLogger.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
	baseLogger.Info("server stopped")
}
