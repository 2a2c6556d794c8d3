package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"web2one-api/pkg/app"
	"web2one-api/pkg/config"
)

func newServeCmd() *cobra.Command {
	var port, dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(func(c *config.Config) {
				if port != "" {
					c.Server.Port = port
				}
				if dbPath != "" {
					c.Storage.DatabasePath = dbPath
				}
			})
			if err != nil {
				return err
			}

			logger := newLogger(cfg, os.Stdout)
			a, err := app.New(cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.Serve(ctx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Port to listen on (default $PORT or 3000)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default $DATABASE_PATH)")
	return cmd
}
