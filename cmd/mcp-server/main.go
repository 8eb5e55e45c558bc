// cmd/mcp-server/main.go — Standalone HTTP MCP server for gosolve
//
// Exposes the gosolve tools as an HTTP endpoint for AI agent frameworks.
//
// Usage:
//
//	go run ./cmd/mcp-server --port 8080 --config config.yaml
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/njchilds90/gosolve"
	"github.com/njchilds90/gosolve/internal/cache"
	"github.com/njchilds90/gosolve/internal/config"
	"github.com/njchilds90/gosolve/internal/server"
)

func main() {
	port := flag.IntP("port", "p", 0, "Port to listen on (overrides server.port)")
	configFile := flag.String("config", "", "config file path")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configFile, *port, logger); err != nil {
		logger.Error("mcp server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configFile string, port int, logger *slog.Logger) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	repo, err := cache.New(cfg.Cache.Backend, cfg.Cache.RedisAddr, cfg.Cache.TTL)
	if err != nil {
		return fmt.Errorf("cache.New() > %w", err)
	}

	logger.Info("gosolve MCP server",
		"port", cfg.Server.Port,
		"cache", cfg.Cache.Backend,
		"requests_per_minute", cfg.RateLimit.RequestsPerMinute,
	)
	srv := server.New(*cfg, gosolve.New(gosolve.WithLogger(logger)), repo, logger)
	return srv.Run(ctx)
}
