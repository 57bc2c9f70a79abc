package main

import (
	"context"
	"errors"
	"io"
	"os"

	"spendlog/internal/backend"
	"spendlog/internal/cli"
	"spendlog/internal/services"
)

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg)

	ctx := context.Background()

	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateBackend(ctx, backend.Config{
		Type:         backend.Type(cfg.Backend),
		LedgerFile:   cfg.LedgerFile,
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize storage backend", "error", err, "backend", cfg.Backend)
		os.Exit(1)
	}

	svc := services.NewLedgerService(result.Repository)

	if err := svc.Initialize(ctx); err != nil {
		logger.Error("Failed to initialize expense store", "error", err)
		svc.Close()
		os.Exit(1)
	}

	menu := cli.NewMenu(svc, os.Stdin, os.Stdout)
	runErr := menu.Run(ctx)

	if err := svc.Close(); err != nil {
		logger.Error("Failed to close expense store", "error", err)
	}

	// Input running out is a normal way to end an interactive session.
	if runErr != nil && !errors.Is(runErr, io.EOF) {
		logger.Error("Session aborted", "error", runErr)
		os.Exit(1)
	}
}
