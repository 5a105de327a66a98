// Package main is the entry point for the panocube converter.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pavelsg/panocube/internal/batch"
	"github.com/pavelsg/panocube/internal/config"
	"github.com/pavelsg/panocube/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Panocube Converter ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	proc, err := batch.New(cfg)
	if err != nil {
		logger.Error("failed to create processor", zap.Error(err))
		os.Exit(1)
	}

	// Stop accepting new panoramas on Ctrl-C or SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Warn("interrupted, finishing in-flight conversions")
		cancel()
	}()

	logger.Info("starting conversion",
		zap.String("input", cfg.Batch.InputDir),
		zap.String("output", cfg.Batch.OutputDir),
		zap.Int("face_size", cfg.Projection.FaceSize),
		zap.Float64("fov", cfg.Projection.FOV))

	start := time.Now()
	stats, err := proc.Run(ctx)
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("conversion finished",
		zap.Int("panoramas", stats.Processed),
		zap.Int("skipped", stats.Skipped),
		zap.Int("faces", stats.Faces),
		zap.Duration("elapsed", time.Since(start)))
}
