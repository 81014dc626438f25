package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/voxlab/emoprep/config"
	"github.com/voxlab/emoprep/dataset"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to an optional YAML configuration file")
	inDir := flag.String("in", "", "raw audio directory (overrides config)")
	outDir := flag.String("out", "", "processed output directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		return 1
	}
	if *inDir != "" {
		cfg.Paths.RawDir = *inDir
	}
	if *outDir != "" {
		cfg.Paths.OutDir = *outDir
	}

	logger := newLogger(cfg.Pipeline.LogLvl)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := dataset.New(cfg, logger)
	p.Progress = os.Stderr
	if err := p.Run(ctx); err != nil {
		logger.Error("pipeline failed", "err", err)
		return 1
	}
	return 0
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
