package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ClassicalCrypto/internal/adapters/keyring"
	"ClassicalCrypto/internal/demo"
	"ClassicalCrypto/internal/shared/config"
	"ClassicalCrypto/internal/shared/logger"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	isDevMode := cfg.AppEnv == "dev"
	baseLogger := logger.New(isDevMode)

	// 3. Keyring. The demo is a single interactive session, so keys live
	// in memory and die with the process.
	keys := keyring.NewMemoryKeyring(&baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shell := demo.NewShell(keys, os.Stdin, os.Stdout, &baseLogger)
	if err := shell.Run(ctx); err != nil && err != context.Canceled {
		baseLogger.Fatal().Err(err).Msg("Demo session failed")
	}
}
