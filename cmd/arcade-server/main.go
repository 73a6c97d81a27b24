package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/network"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags.Sources())
	if err == nil {
		err = flags.Apply(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "arcade-server: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	netCfg := network.DefaultConfig()
	netCfg.Address = cfg.Listen
	netCfg.FrameInterval = cfg.FrameInterval()
	netCfg.Options = cfg.Options

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := network.NewServer(netCfg, logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
