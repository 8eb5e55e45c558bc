package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/njchilds90/gosolve"
	"github.com/njchilds90/gosolve/internal/cache"
	"github.com/njchilds90/gosolve/internal/server"
)

func newServeCommand() *cobra.Command {
	var port int
	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP tool server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			repo, err := cache.New(cfg.Cache.Backend, cfg.Cache.RedisAddr, cfg.Cache.TTL)
			if err != nil {
				return fmt.Errorf("cache.New() > %w", err)
			}

			logger := slog.Default()
			srv := server.New(*cfg, gosolve.New(gosolve.WithLogger(logger)), repo, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
	command.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides server.port)")
	return command
}
